package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vchernov/ollama-dashboard/pkg/logger"
)

// RequestID tags every request context with a short identifier that the log
// handler prints on each line produced while serving it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()[:8]
		ctx := logger.ContextWithRequestID(r.Context(), id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
