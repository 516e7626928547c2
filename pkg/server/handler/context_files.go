package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/vchernov/ollama-dashboard/pkg/domain"
	"github.com/vchernov/ollama-dashboard/pkg/logger"
	"github.com/vchernov/ollama-dashboard/pkg/server/middleware"
	"github.com/vchernov/ollama-dashboard/pkg/server/response"
)

// maxUploadBytes bounds a single context-file upload.
const maxUploadBytes = 10 << 20

type ContextFilesRepository interface {
	Add(sessionID string, file domain.ContextFile)
	Remove(sessionID, displayName string) (string, bool)
	List(sessionID string) []domain.ContextFile
}

type contextFiles struct {
	repo      ContextFilesRepository
	uploadDir string
	writer    response.JSONResponseWriter
}

func NewContextFiles(repo ContextFilesRepository, uploadDir string) *contextFiles {
	return &contextFiles{repo: repo, uploadDir: uploadDir}
}

func (h *contextFiles) GetFiles(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	h.writer.WriteSuccessResponse(w, map[string]any{
		"files": h.repo.List(sessionID),
	})
}

// UploadFile stores the uploaded artifact under the session's upload
// directory and registers it by display name. Re-uploading the same name
// overwrites the prior artifact. Whether the file is actually usable is
// decided lazily at prompt-assembly time; unsupported uploads simply never
// reach the prompt.
func (h *contextFiles) UploadFile(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	displayName := filepath.Base(header.Filename)
	if displayName == "." || displayName == string(filepath.Separator) {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "invalid file name")
		return
	}

	path, err := h.saveUpload(sessionID, displayName, file)
	if err != nil {
		slog.ErrorContext(r.Context(), "saving upload", logger.Err(err))
		h.writer.WriteErrorResponse(w, http.StatusInternalServerError, "could not store file")
		return
	}

	h.repo.Add(sessionID, domain.ContextFile{DisplayName: displayName, SourcePath: path})

	slog.InfoContext(r.Context(), "context file added", "name", displayName)
	h.writer.WriteSuccessResponse(w, map[string]any{
		"files": h.repo.List(sessionID),
	})
}

func (h *contextFiles) RemoveFile(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())

	name := r.URL.Query().Get("name")
	if name == "" {
		h.writer.WriteErrorResponse(w, http.StatusBadRequest, "missing name parameter")
		return
	}

	path, ok := h.repo.Remove(sessionID, name)
	if ok {
		if err := os.Remove(path); err != nil {
			slog.DebugContext(r.Context(), "removing uploaded file", logger.Err(err))
		}
	}

	h.writer.WriteSuccessResponse(w, map[string]any{
		"files": h.repo.List(sessionID),
	})
}

func (h *contextFiles) saveUpload(sessionID, displayName string, src io.Reader) (string, error) {
	dir := filepath.Join(h.uploadDir, sessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	path := filepath.Join(dir, displayName)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return path, nil
}
