package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const sessionCookieName = "dashboard_session"

type contextKey string

const sessionIDKey contextKey = "session_id"

// Session assigns every browser a stable session identifier via cookie. Each
// session holds its own in-memory transcript and context-file set; nothing is
// shared between sessions except the persisted model preference.
//
// The identifier is used downstream as a directory name for uploads, so only
// values this middleware itself could have issued are accepted: anything that
// does not parse as a UUID is discarded and replaced with a fresh one.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
				sessionID = cookie.Value
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID extracts the session identifier set by [Session].
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}
