package handler

import (
	"context"
	"net/http"

	"github.com/vchernov/ollama-dashboard/pkg/server/response"
)

type ModelsProvider interface {
	ListModels(ctx context.Context) []string
}

type ActiveModelProvider interface {
	ActiveModel(ctx context.Context) string
}

type models struct {
	provider ModelsProvider
	active   ActiveModelProvider
	writer   response.JSONResponseWriter
}

func NewModels(provider ModelsProvider, active ActiveModelProvider) *models {
	return &models{provider: provider, active: active}
}

// GetModels lists the identifiers known to the inference server. An
// unreachable server yields an empty list so the page still renders.
func (h *models) GetModels(w http.ResponseWriter, r *http.Request) {
	h.writer.WriteSuccessResponse(w, map[string]any{
		"models": h.provider.ListModels(r.Context()),
		"active": h.active.ActiveModel(r.Context()),
	})
}
