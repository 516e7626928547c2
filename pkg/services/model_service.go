package services

import (
	"context"
	"log/slog"

	"github.com/vchernov/ollama-dashboard/pkg/logger"
)

type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

type modelService struct {
	lister ModelLister
}

func NewModelService(lister ModelLister) *modelService {
	return &modelService{lister: lister}
}

// ListModels returns the identifiers available on the inference server. An
// absent or unreachable server degrades to an empty list, never an error.
func (m *modelService) ListModels(ctx context.Context) []string {
	models, err := m.lister.ListModels(ctx)
	if err != nil {
		slog.WarnContext(ctx, "listing models", logger.Err(err))
		return []string{}
	}
	return models
}
