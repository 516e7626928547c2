package handler

import (
	"io"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/vchernov/ollama-dashboard/pkg/server/middleware"
	"github.com/vchernov/ollama-dashboard/pkg/server/response"
)

// maxPromptBytes bounds a system-prompt override upload.
const maxPromptBytes = 1 << 20

type PromptRepository interface {
	Set(sessionID, text string)
	Get(sessionID string) (string, bool)
	Reset(sessionID string)
}

type systemPrompt struct {
	repo   PromptRepository
	writer response.JSONResponseWriter
}

func NewSystemPrompt(repo PromptRepository) *systemPrompt {
	return &systemPrompt{repo: repo}
}

func (h *systemPrompt) GetPrompt(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	text, overridden := h.repo.Get(sessionID)
	h.writer.WriteSuccessResponse(w, map[string]any{
		"overridden": overridden,
		"text":       text,
	})
}

// SetPrompt consumes the uploaded file whole as the base instruction for this
// session, replacing the configured default until reset.
func (h *systemPrompt) SetPrompt(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxPromptBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "could not read file")
		return
	}
	if !utf8.Valid(data) {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "prompt file must be text")
		return
	}

	h.repo.Set(sessionID, string(data))

	slog.InfoContext(r.Context(), "system prompt overridden", "bytes", len(data))
	h.writer.WriteSuccessResponse(w, map[string]any{"overridden": true})
}

func (h *systemPrompt) ResetPrompt(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	h.repo.Reset(sessionID)
	h.writer.WriteSuccessResponse(w, map[string]any{"overridden": false})
}
