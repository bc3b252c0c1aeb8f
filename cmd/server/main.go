// Package main implements the entry point for the CleverCore API server,
// which proxies marketing copy, image and video generation to the Gemini API
// and hosts the CleverCore chat assistant.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/phrazzld/clevercore-api/internal/config"
	"github.com/phrazzld/clevercore-api/internal/platform/gemini"
	"github.com/phrazzld/clevercore-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// run loads configuration, wires the application and serves until SIGINT or SIGTERM.
func run() error {
	// A missing .env file is fine; the environment may already be populated
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := initializeApp()
	if err != nil {
		return err
	}

	factory := gemini.SDKClientFactory{
		BaseURL:     cfg.LLM.BaseURL,
		HTTPTimeout: time.Duration(cfg.LLM.HTTPTimeoutSeconds) * time.Second,
	}
	app, err := newApplication(cfg, slog.Default(), factory)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.startHTTPServer(ctx, app.setupRouter())
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"text_model", cfg.LLM.TextModel,
		"video_model", cfg.LLM.VideoModel,
		"api_key_present", cfg.LLM.GeminiAPIKey != "",
		"paid_key_selected", cfg.LLM.PaidKeySelected)

	return cfg, nil
}
