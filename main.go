package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"

	"github.com/vchernov/ollama-dashboard/pkg/auth"
	"github.com/vchernov/ollama-dashboard/pkg/database"
	"github.com/vchernov/ollama-dashboard/pkg/logger"
	"github.com/vchernov/ollama-dashboard/pkg/ollama"
	"github.com/vchernov/ollama-dashboard/pkg/prompt"
	"github.com/vchernov/ollama-dashboard/pkg/repository"
	"github.com/vchernov/ollama-dashboard/pkg/server"
	"github.com/vchernov/ollama-dashboard/pkg/server/handler"
	"github.com/vchernov/ollama-dashboard/pkg/server/middleware"
	"github.com/vchernov/ollama-dashboard/pkg/services"
	"github.com/vchernov/ollama-dashboard/pkg/web"
	"github.com/vchernov/ollama-dashboard/pkg/workers"
)

type Config struct {
	Addr                 string        `env:"ADDR" envDefault:":8080"`
	OllamaURL            string        `env:"OLLAMA_URL" envDefault:"http://127.0.0.1:11434"`
	SettingsDBPath       string        `env:"SETTINGS_DB_PATH" envDefault:"data/settings.db"`
	UploadDir            string        `env:"UPLOAD_DIR" envDefault:"data/uploads"`
	AuthToken            string        `env:"AUTH_TOKEN"`
	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"10m"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	workerGroup, err := setupWorkers()
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers() (workers.Group, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	var worker workers.Worker
	var workerGroup workers.Group

	db, err := database.NewSQLite(cfg.SettingsDBPath)
	if err != nil {
		return nil, fmt.Errorf("creating settings db: %w", err)
	}

	ollamaClient := ollama.NewClient(cfg.OllamaURL)

	chatRepository := repository.NewChatRepository()
	contextFilesRepository := repository.NewContextFilesRepository()
	promptRepository := repository.NewPromptRepository()
	settingsRepository := repository.NewSettingsRepository(db)

	assembler := prompt.NewAssembler(nil)

	chatService := services.NewChatService(
		chatRepository,
		contextFilesRepository,
		promptRepository,
		settingsRepository,
		assembler,
		ollamaClient,
	)
	modelService := services.NewModelService(ollamaClient)

	authenticator := auth.NewAuthenticator(cfg.AuthToken)

	srv := server.New(
		cfg.Addr,
		web.Static(),
		handler.NewChat(chatService),
		handler.NewHistory(chatService),
		handler.NewModels(modelService, chatService),
		handler.NewModel(chatService),
		handler.NewContextFiles(contextFilesRepository, cfg.UploadDir),
		handler.NewSystemPrompt(promptRepository),
		middleware.RequestID,
		middleware.Auth(authenticator),
		middleware.Session,
	)

	if worker, err = workers.NewHTTPServer(srv); err == nil {
		workerGroup = append(workerGroup, worker)
	} else {
		return nil, err
	}

	if worker, err = workers.NewSessionJanitor(
		cfg.SessionTTL,
		cfg.SessionSweepInterval,
		chatRepository,
		contextFilesRepository,
		promptRepository,
	); err == nil {
		workerGroup = append(workerGroup, worker)
	} else {
		return nil, err
	}

	return workerGroup, nil
}
