package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vchernov/ollama-dashboard/pkg/domain"
	"github.com/vchernov/ollama-dashboard/pkg/server/middleware"
	"github.com/vchernov/ollama-dashboard/pkg/server/response"
)

type ModelSwitcher interface {
	SwitchModel(ctx context.Context, sessionID, model string) domain.Turn
}

type model struct {
	switcher ModelSwitcher
	writer   response.JSONResponseWriter
}

func NewModel(switcher ModelSwitcher) *model {
	return &model{switcher: switcher}
}

// SetModel persists the selection and resets the transcript to a fresh
// greeting. The identifier is not validated against the backend; a wrong
// model surfaces later through the failed inference call.
func (h *model) SetModel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Model string `json:"model"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionID := middleware.SessionID(r.Context())
	greeting := h.switcher.SwitchModel(r.Context(), sessionID, req.Model)

	h.writer.WriteSuccessResponse(w, map[string]any{
		"model":    req.Model,
		"greeting": toView(greeting),
	})
}
