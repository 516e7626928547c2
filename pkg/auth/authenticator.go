package auth

import (
	"crypto/subtle"
	"log/slog"
)

type authenticator struct {
	token string
}

// NewAuthenticator guards the dashboard with a single shared token. An empty
// token leaves the dashboard open, which is the expected setup for a local
// single-user install.
func NewAuthenticator(token string) *authenticator {
	if token == "" {
		slog.Info("dashboard auth disabled, accepting all requests")
	}

	return &authenticator{token: token}
}

func (a *authenticator) IsAuthorized(provided string) bool {
	if a.token == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(a.token), []byte(provided)) == 1
}
