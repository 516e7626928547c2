package server

import (
	"io/fs"
	"net/http"
)

type ChatHandler interface {
	SendMessage(w http.ResponseWriter, r *http.Request)
}

type HistoryHandler interface {
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type ModelsHandler interface {
	GetModels(w http.ResponseWriter, r *http.Request)
}

type ModelHandler interface {
	SetModel(w http.ResponseWriter, r *http.Request)
}

type ContextFilesHandler interface {
	GetFiles(w http.ResponseWriter, r *http.Request)
	UploadFile(w http.ResponseWriter, r *http.Request)
	RemoveFile(w http.ResponseWriter, r *http.Request)
}

type SystemPromptHandler interface {
	GetPrompt(w http.ResponseWriter, r *http.Request)
	SetPrompt(w http.ResponseWriter, r *http.Request)
	ResetPrompt(w http.ResponseWriter, r *http.Request)
}

// New assembles the dashboard HTTP server: the JSON API under /api plus the
// embedded static page at the root. Middlewares wrap the whole mux in the
// order given.
func New(
	addr string,
	static fs.FS,
	chat ChatHandler,
	history HistoryHandler,
	models ModelsHandler,
	model ModelHandler,
	contextFiles ContextFilesHandler,
	systemPrompt SystemPromptHandler,
	middlewares ...func(http.Handler) http.Handler,
) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/chat", chat.SendMessage)
	mux.HandleFunc("GET /api/history", history.GetHistory)
	mux.HandleFunc("GET /api/models", models.GetModels)
	mux.HandleFunc("POST /api/model", model.SetModel)
	mux.HandleFunc("GET /api/context-files", contextFiles.GetFiles)
	mux.HandleFunc("POST /api/context-files", contextFiles.UploadFile)
	mux.HandleFunc("DELETE /api/context-files", contextFiles.RemoveFile)
	mux.HandleFunc("GET /api/system-prompt", systemPrompt.GetPrompt)
	mux.HandleFunc("POST /api/system-prompt", systemPrompt.SetPrompt)
	mux.HandleFunc("DELETE /api/system-prompt", systemPrompt.ResetPrompt)

	mux.Handle("GET /", http.FileServer(http.FS(static)))

	var root http.Handler = mux
	for i := len(middlewares) - 1; i >= 0; i-- {
		root = middlewares[i](root)
	}

	return &http.Server{
		Addr:    addr,
		Handler: root,
	}
}
