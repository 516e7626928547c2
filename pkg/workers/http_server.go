package workers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

type httpServer struct {
	srv *http.Server
}

func NewHTTPServer(srv *http.Server) (*httpServer, error) {
	if srv == nil {
		return nil, errors.New("http server is nil")
	}
	return &httpServer{srv: srv}, nil
}

func (h *httpServer) Name() string { return "http_server" }

func (h *httpServer) Start(ctx context.Context) error {
	slog.Info("Starting worker", "name", h.Name(), "addr", h.srv.Addr)
	defer slog.Info("Worker stopped", "name", h.Name())

	go func() {
		<-ctx.Done()
		shutdownCtx, cancelFn := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelFn()
		if err := h.srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutting down http server", "err", err)
		}
	}()

	if err := h.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
