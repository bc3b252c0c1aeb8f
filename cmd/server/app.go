package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/clevercore-api/internal/config"
	"github.com/phrazzld/clevercore-api/internal/credential"
	"github.com/phrazzld/clevercore-api/internal/events"
	"github.com/phrazzld/clevercore-api/internal/generation"
	"github.com/phrazzld/clevercore-api/internal/platform/gemini"
	"github.com/phrazzld/clevercore-api/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Host-side credential selection, shared by the gateway and the credential endpoints
	credentials *credential.Store

	gateway           generation.Gateway
	generationService service.GenerationService

	// Event system
	eventEmitter *events.InMemoryEventEmitter
	usage        *events.UsageLogHandler
}

// newApplication creates a new application instance with all dependencies initialized.
// factory builds provider clients; tests pass a mock.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	factory gemini.ClientFactory,
) (*application, error) {
	app := &application{
		config:      cfg,
		logger:      logger,
		credentials: credential.NewStore(cfg.LLM.GeminiAPIKey, cfg.LLM.PaidKeySelected),
	}

	var err error
	app.gateway, err = gemini.NewGateway(
		logger.With("component", "gemini_gateway"),
		cfg.LLM,
		cfg.Video,
		factory,
		app.credentials,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generation gateway: %w", err)
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.usage = events.NewUsageLogHandler(logger)
	app.eventEmitter.RegisterHandler(app.usage)

	app.generationService, err = service.NewGenerationService(app.gateway, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation service: %w", err)
	}

	logger.Info("application initialized",
		"poll_interval_seconds", cfg.Video.PollIntervalSeconds,
		"max_poll_attempts", cfg.Video.MaxPollAttempts)
	return app, nil
}
