package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/vchernov/ollama-dashboard/pkg/domain"
	"github.com/vchernov/ollama-dashboard/pkg/server/middleware"
	"github.com/vchernov/ollama-dashboard/pkg/server/response"
)

type ChatSender interface {
	SendMessage(ctx context.Context, sessionID, text string) ([]domain.Turn, error)
}

type chat struct {
	sender ChatSender
	writer response.JSONResponseWriter
}

func NewChat(sender ChatSender) *chat {
	return &chat{sender: sender}
}

// SendMessage runs one user turn. The interaction is deliberately blocking:
// the page shows a thinking indicator until the inference server replies or
// fails, and the failure itself comes back as a regular assistant turn.
func (h *chat) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "message text is empty")
		return
	}

	sessionID := middleware.SessionID(r.Context())

	turns, err := h.sender.SendMessage(r.Context(), sessionID, req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrNoModelSelected) {
			h.writer.WriteErrorResponse(w, http.StatusConflict,
				"⚠️ No model selected. Open Settings and pick a model first.")
			return
		}
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writer.WriteSuccessResponse(w, map[string]any{
		"turns": toViews(turns),
	})
}
