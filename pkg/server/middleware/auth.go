package middleware

import (
	"log/slog"
	"net/http"
	"strings"
)

type Authenticator interface {
	IsAuthorized(token string) bool
}

// Auth rejects requests whose bearer token the authenticator does not accept.
// With auth disabled the authenticator accepts everything and the middleware
// is a passthrough.
func Auth(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

			if !authenticator.IsAuthorized(token) {
				slog.WarnContext(r.Context(), "unauthorized request", "path", r.URL.Path)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
