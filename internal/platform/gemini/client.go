package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/clevercore-api/internal/generation"
	"google.golang.org/genai"
)

// OperationChecker refreshes the status of a long-running video operation.
type OperationChecker interface {
	GetVideosOperation(
		ctx context.Context,
		op *genai.GenerateVideosOperation,
	) (*genai.GenerateVideosOperation, error)
}

// Provider is the subset of the Gemini API used by the gateway.
type Provider interface {
	OperationChecker

	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)

	GenerateVideos(
		ctx context.Context,
		model string,
		prompt string,
		config *genai.GenerateVideosConfig,
	) (*genai.GenerateVideosOperation, error)
}

// ClientFactory creates a Provider authenticated with apiKey.
// Implementations must not cache clients across calls so that a credential
// change is picked up by the very next request.
type ClientFactory interface {
	NewProvider(ctx context.Context, apiKey string) (Provider, error)
}

// SDKClientFactory builds genai-backed providers.
type SDKClientFactory struct {
	// BaseURL overrides the API endpoint. Empty uses the SDK default.
	BaseURL string

	// HTTPTimeout bounds every individual HTTP call. Zero means no timeout.
	HTTPTimeout time.Duration
}

// NewProvider implements ClientFactory.
func (f SDKClientFactory) NewProvider(ctx context.Context, apiKey string) (Provider, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if f.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: f.BaseURL}
	}
	if f.HTTPTimeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: f.HTTPTimeout}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &sdkProvider{client: client}, nil
}

// sdkProvider adapts *genai.Client to Provider.
type sdkProvider struct {
	client *genai.Client
}

func (p *sdkProvider) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	return p.client.Models.GenerateContent(ctx, model, contents, config)
}

func (p *sdkProvider) GenerateVideos(
	ctx context.Context,
	model string,
	prompt string,
	config *genai.GenerateVideosConfig,
) (*genai.GenerateVideosOperation, error) {
	return p.client.Models.GenerateVideos(ctx, model, prompt, nil, config)
}

func (p *sdkProvider) GetVideosOperation(
	ctx context.Context,
	op *genai.GenerateVideosOperation,
) (*genai.GenerateVideosOperation, error) {
	return p.client.Operations.GetVideosOperation(ctx, op, nil)
}
