package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func runSession(t *testing.T, cookie string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var gotID string
	handler := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = SessionID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return gotID, rec
}

func TestSessionIssuesCookieWhenAbsent(t *testing.T) {
	gotID, rec := runSession(t, "")

	if _, err := uuid.Parse(gotID); err != nil {
		t.Fatalf("fresh session id should be a uuid, got %q", gotID)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != sessionCookieName {
		t.Fatalf("expected one session cookie, got %+v", cookies)
	}
	if cookies[0].Value != gotID {
		t.Errorf("cookie value %q should match context id %q", cookies[0].Value, gotID)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie should be http-only")
	}
}

func TestSessionReusesValidCookie(t *testing.T) {
	existing := uuid.NewString()

	gotID, rec := runSession(t, existing)

	if gotID != existing {
		t.Errorf("expected existing session id %q to be reused, got %q", existing, gotID)
	}
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Errorf("reusing a valid cookie should not set a new one, got %+v", cookies)
	}
}

// Session ids become directory names under the upload dir, so a cookie value
// that is not a uuid must never reach the handlers.
func TestSessionReplacesMalformedCookie(t *testing.T) {
	for _, malformed := range []string{"../escaped", "../../../root", "", "not-a-uuid", "a/b"} {
		gotID, rec := runSession(t, malformed)

		if gotID == malformed {
			t.Errorf("malformed cookie %q must not be accepted as session id", malformed)
		}
		if _, err := uuid.Parse(gotID); err != nil {
			t.Errorf("replacement for %q should be a uuid, got %q", malformed, gotID)
		}

		cookies := rec.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Value != gotID {
			t.Errorf("malformed cookie %q should be replaced via Set-Cookie, got %+v", malformed, cookies)
		}
	}
}
