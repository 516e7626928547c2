package workers

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/vchernov/ollama-dashboard/pkg/logger"
)

type TranscriptSweeper interface {
	DeleteIdle(ttl time.Duration) int
}

type ContextFilesSweeper interface {
	DeleteIdle(ttl time.Duration) []string
}

// sessionJanitor periodically drops the in-memory state of idle sessions and
// removes their uploaded files from disk. Session state is process-lifetime
// only; this just caps how long an abandoned browser tab keeps memory alive.
type sessionJanitor struct {
	ttl      time.Duration
	interval time.Duration

	transcripts TranscriptSweeper
	files       ContextFilesSweeper
	prompts     TranscriptSweeper
}

func NewSessionJanitor(
	ttl time.Duration,
	interval time.Duration,
	transcripts TranscriptSweeper,
	files ContextFilesSweeper,
	prompts TranscriptSweeper,
) (*sessionJanitor, error) {
	return &sessionJanitor{
		ttl:         ttl,
		interval:    interval,
		transcripts: transcripts,
		files:       files,
		prompts:     prompts,
	}, nil
}

func (s *sessionJanitor) Name() string { return "session_janitor" }

func (s *sessionJanitor) Start(ctx context.Context) error {
	slog.Info("Starting worker", "name", s.Name(), "ttl", s.ttl, "interval", s.interval)
	defer slog.Info("Worker stopped", "name", s.Name())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionJanitor) sweep(ctx context.Context) {
	removed := s.transcripts.DeleteIdle(s.ttl)
	s.prompts.DeleteIdle(s.ttl)

	paths := s.files.DeleteIdle(s.ttl)
	dirs := make(map[string]struct{})
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			slog.DebugContext(ctx, "removing idle upload", logger.Err(err))
		}
		dirs[filepath.Dir(path)] = struct{}{}
	}
	// Drop the emptied per-session upload directories too; Remove refuses
	// non-empty directories, so a concurrent upload is never lost.
	for dir := range dirs {
		if err := os.Remove(dir); err != nil {
			slog.DebugContext(ctx, "removing idle upload directory", logger.Err(err))
		}
	}

	if removed > 0 || len(paths) > 0 {
		slog.InfoContext(ctx, "swept idle sessions", "transcripts", removed, "uploads", len(paths))
	}
}
