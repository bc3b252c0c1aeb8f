package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/clevercore-api/internal/config"
	"github.com/phrazzld/clevercore-api/internal/credential"
	"github.com/phrazzld/clevercore-api/internal/generation"
	"github.com/phrazzld/clevercore-api/internal/redact"
	"google.golang.org/genai"
)

// Fixed provider parameters.
const (
	imageAspectRatio = "1:1"
	videoResolution  = "720p"
	videoAspectRatio = "16:9"
	videosPerRequest = 1

	copyPromptTemplate = "Act as a professional digital marketer. Write a %s about \"%s\". " +
		"The tone should be %s. Keep it engaging, concise, and optimized for conversion."
)

// Gateway implements generation.Gateway using the Gemini API.
type Gateway struct {
	logger      *slog.Logger
	llm         config.LLMConfig
	factory     ClientFactory
	credentials credential.Source
	pollBackoff BackoffFactory
}

var _ generation.Gateway = (*Gateway)(nil)

// Option customizes a Gateway.
type Option func(*Gateway)

// WithPollBackoff replaces the polling policy derived from the video configuration.
func WithPollBackoff(factory BackoffFactory) Option {
	return func(g *Gateway) {
		if factory != nil {
			g.pollBackoff = factory
		}
	}
}

// NewGateway creates a Gateway.
//
// factory is asked for a new provider client on every call and credentials is
// read on every call, so neither a client nor a credential is ever cached.
func NewGateway(
	logger *slog.Logger,
	llm config.LLMConfig,
	video config.VideoConfig,
	factory ClientFactory,
	credentials credential.Source,
	opts ...Option,
) (*Gateway, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if factory == nil {
		return nil, fmt.Errorf("%w: client factory cannot be nil", generation.ErrInvalidConfig)
	}
	if credentials == nil {
		return nil, fmt.Errorf("%w: credential source cannot be nil", generation.ErrInvalidConfig)
	}
	if llm.TextModel == "" || llm.ImageModel == "" || llm.VideoModel == "" || llm.ChatModel == "" {
		return nil, fmt.Errorf("%w: model names cannot be empty", generation.ErrInvalidConfig)
	}

	g := &Gateway{
		logger:      logger,
		llm:         llm,
		factory:     factory,
		credentials: credentials,
		pollBackoff: PollBackoff(
			time.Duration(video.PollIntervalSeconds)*time.Second,
			video.MaxPollAttempts,
			time.Duration(video.PollTimeoutMinutes)*time.Minute,
		),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Dispatch implements generation.Gateway.
func (g *Gateway) Dispatch(ctx context.Context, req generation.Request) (generation.Result, error) {
	kind := req.Kind()
	if !kind.Valid() || req.Prompt() == "" {
		return generation.Result{}, fmt.Errorf("%w: unsupported or empty request", generation.ErrInvalidRequest)
	}

	g.logger.InfoContext(ctx, "dispatching generation request",
		"kind", kind,
		"prompt_length", len(req.Prompt()))

	var (
		content string
		err     error
	)
	switch kind {
	case generation.KindText:
		content, err = g.generateText(ctx, req)
	case generation.KindImage:
		content, err = g.generateImage(ctx, req)
	case generation.KindVideo:
		content, err = g.generateVideo(ctx, req)
	}

	if err != nil {
		classified := classify(kind, err)
		g.logger.ErrorContext(ctx, "generation request failed",
			"kind", kind,
			"error", redact.Error(err),
			"credential_required", generation.IsCredentialRequired(classified))
		return generation.Result{}, classified
	}

	return generation.Result{Kind: kind, Content: content}, nil
}

func (g *Gateway) generateText(ctx context.Context, req generation.Request) (string, error) {
	provider, err := g.provider(ctx)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(copyPromptTemplate, req.Format(), req.Prompt(), req.Tone())
	resp, err := provider.GenerateContent(ctx, g.llm.TextModel, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	return NormalizeText(resp), nil
}

func (g *Gateway) generateImage(ctx context.Context, req generation.Request) (string, error) {
	provider, err := g.provider(ctx)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{genai.NewContentFromText(req.Prompt(), genai.RoleUser)}
	resp, err := provider.GenerateContent(ctx, g.llm.ImageModel, contents, &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: imageAspectRatio},
	})
	if err != nil {
		return "", err
	}

	return NormalizeImage(resp)
}

func (g *Gateway) generateVideo(ctx context.Context, req generation.Request) (string, error) {
	state, err := g.credentials.Current(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve credential: %w", err)
	}
	if !state.HasSelectedAPIKey() {
		return "", generation.ErrCredentialRequired
	}

	provider, err := g.factory.NewProvider(ctx, state.APIKey)
	if err != nil {
		return "", err
	}

	op, err := provider.GenerateVideos(ctx, g.llm.VideoModel, req.Prompt(), &genai.GenerateVideosConfig{
		NumberOfVideos: videosPerRequest,
		Resolution:     videoResolution,
		AspectRatio:    videoAspectRatio,
	})
	if err != nil {
		return "", err
	}

	op, err = NewPoller(provider, g.pollBackoff, g.logger).Wait(ctx, op)
	if err != nil {
		return "", err
	}

	return NormalizeVideo(op, state.APIKey)
}

// provider resolves the active credential and builds a fresh client for it.
func (g *Gateway) provider(ctx context.Context) (Provider, error) {
	state, err := g.credentials.Current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve credential: %w", err)
	}
	return g.factory.NewProvider(ctx, state.APIKey)
}
