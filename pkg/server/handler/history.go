package handler

import (
	"context"
	"net/http"

	"github.com/vchernov/ollama-dashboard/pkg/domain"
	"github.com/vchernov/ollama-dashboard/pkg/server/middleware"
	"github.com/vchernov/ollama-dashboard/pkg/server/response"
)

type HistoryProvider interface {
	History(ctx context.Context, sessionID string) []domain.Turn
}

type history struct {
	provider HistoryProvider
	writer   response.JSONResponseWriter
}

func NewHistory(provider HistoryProvider) *history {
	return &history{provider: provider}
}

func (h *history) GetHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	h.writer.WriteSuccessResponse(w, map[string]any{
		"turns": toViews(h.provider.History(r.Context(), sessionID)),
	})
}
