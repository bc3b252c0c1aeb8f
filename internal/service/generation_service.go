package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/clevercore-api/internal/events"
	"github.com/phrazzld/clevercore-api/internal/generation"
	"github.com/phrazzld/clevercore-api/internal/redact"
)

// GenerationService provides content generation operations.
type GenerationService interface {
	// GenerateText writes marketing copy for prompt in the given tone and format.
	// Empty tone or format select the defaults.
	GenerateText(ctx context.Context, prompt, tone, format string) (string, error)

	// GenerateImage returns a data URI for an image generated from prompt.
	GenerateImage(ctx context.Context, prompt string) (string, error)

	// GenerateVideo returns a playable URI for a video generated from prompt.
	// It requires a selected paid credential.
	GenerateVideo(ctx context.Context, prompt string) (string, error)

	// Converse answers message in the context of history. It never fails.
	Converse(ctx context.Context, history []generation.ChatMessage, message string) string
}

// generationServiceImpl implements the GenerationService interface
type generationServiceImpl struct {
	gateway generation.Gateway
	emitter events.EventEmitter
	logger  *slog.Logger
}

// NewGenerationService creates a new GenerationService.
func NewGenerationService(
	gateway generation.Gateway,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (GenerationService, error) {
	if gateway == nil {
		return nil, errors.New("gateway cannot be nil")
	}
	if emitter == nil {
		return nil, errors.New("event emitter cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &generationServiceImpl{
		gateway: gateway,
		emitter: emitter,
		logger:  logger.With("component", "generation_service"),
	}, nil
}

// GenerateText implements GenerationService.
func (s *generationServiceImpl) GenerateText(ctx context.Context, prompt, tone, format string) (string, error) {
	req, err := generation.NewTextRequest(prompt, tone, format)
	if err != nil {
		return "", err
	}
	return s.dispatch(ctx, req)
}

// GenerateImage implements GenerationService.
func (s *generationServiceImpl) GenerateImage(ctx context.Context, prompt string) (string, error) {
	req, err := generation.NewImageRequest(prompt)
	if err != nil {
		return "", err
	}
	return s.dispatch(ctx, req)
}

// GenerateVideo implements GenerationService.
func (s *generationServiceImpl) GenerateVideo(ctx context.Context, prompt string) (string, error) {
	req, err := generation.NewVideoRequest(prompt)
	if err != nil {
		return "", err
	}
	return s.dispatch(ctx, req)
}

// Converse implements GenerationService.
func (s *generationServiceImpl) Converse(
	ctx context.Context,
	history []generation.ChatMessage,
	message string,
) string {
	s.logger.DebugContext(ctx, "chat turn", "history_length", len(history))
	return s.gateway.Converse(ctx, history, message)
}

func (s *generationServiceImpl) dispatch(ctx context.Context, req generation.Request) (string, error) {
	started := time.Now()
	result, err := s.gateway.Dispatch(ctx, req)
	elapsed := time.Since(started)

	event := events.NewGenerationEvent(req.Kind(), elapsed, err)
	if emitErr := s.emitter.EmitEvent(ctx, event); emitErr != nil {
		s.logger.WarnContext(ctx, "failed to emit generation event",
			"event_id", event.ID,
			"error", emitErr)
	}

	if err != nil {
		s.logger.WarnContext(ctx, "generation did not complete",
			"kind", req.Kind(),
			"outcome", event.Outcome,
			"error", redact.Error(err))
		return "", err
	}

	s.logger.InfoContext(ctx, "generation completed",
		"kind", req.Kind(),
		"duration_ms", elapsed.Milliseconds())
	return result.Content, nil
}
