package gemini

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// MockProvider is a Provider whose behaviour is configured with function fields.
// It records every call so tests can assert on call counts and payloads.
type MockProvider struct {
	GenerateContentFn func(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
	GenerateVideosFn func(
		ctx context.Context,
		model string,
		prompt string,
		config *genai.GenerateVideosConfig,
	) (*genai.GenerateVideosOperation, error)
	GetVideosOperationFn func(
		ctx context.Context,
		op *genai.GenerateVideosOperation,
	) (*genai.GenerateVideosOperation, error)

	mu                sync.Mutex
	calls             map[string]int
	lastModel         string
	lastContents      []*genai.Content
	lastContentConfig *genai.GenerateContentConfig
	lastVideoPrompt   string
	lastVideoConfig   *genai.GenerateVideosConfig
}

// NewMockProvider creates a MockProvider answering every text call with text.
func NewMockProvider(text string) *MockProvider {
	return &MockProvider{
		GenerateContentFn: func(
			context.Context, string, []*genai.Content, *genai.GenerateContentConfig,
		) (*genai.GenerateContentResponse, error) {
			return TextResponse(text), nil
		},
	}
}

func (m *MockProvider) record(method string) {
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// GenerateContent implements Provider.
func (m *MockProvider) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	m.mu.Lock()
	m.record("GenerateContent")
	m.lastModel = model
	m.lastContents = contents
	m.lastContentConfig = config
	fn := m.GenerateContentFn
	m.mu.Unlock()

	if fn == nil {
		return TextResponse(""), nil
	}
	return fn(ctx, model, contents, config)
}

// GenerateVideos implements Provider.
func (m *MockProvider) GenerateVideos(
	ctx context.Context,
	model string,
	prompt string,
	config *genai.GenerateVideosConfig,
) (*genai.GenerateVideosOperation, error) {
	m.mu.Lock()
	m.record("GenerateVideos")
	m.lastModel = model
	m.lastVideoPrompt = prompt
	m.lastVideoConfig = config
	fn := m.GenerateVideosFn
	m.mu.Unlock()

	if fn == nil {
		return VideoOperation(true, "https://mock.invalid/video"), nil
	}
	return fn(ctx, model, prompt, config)
}

// GetVideosOperation implements Provider.
func (m *MockProvider) GetVideosOperation(
	ctx context.Context,
	op *genai.GenerateVideosOperation,
) (*genai.GenerateVideosOperation, error) {
	m.mu.Lock()
	m.record("GetVideosOperation")
	fn := m.GetVideosOperationFn
	m.mu.Unlock()

	if fn == nil {
		return nil, errors.New("unexpected GetVideosOperation call")
	}
	return fn(ctx, op)
}

// QueueOperations makes GetVideosOperation return ops in order. Calls beyond
// the queue fail.
func (m *MockProvider) QueueOperations(ops ...*genai.GenerateVideosOperation) {
	var (
		mu   sync.Mutex
		next int
	)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetVideosOperationFn = func(context.Context, *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
		mu.Lock()
		defer mu.Unlock()
		if next >= len(ops) {
			return nil, fmt.Errorf("operation queue exhausted after %d checks", next)
		}
		op := ops[next]
		next++
		return op, nil
	}
}

// CallCount returns how many times method was called.
func (m *MockProvider) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// TotalCalls returns the number of calls across all methods.
func (m *MockProvider) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

// LastModel returns the model of the most recent call.
func (m *MockProvider) LastModel() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastModel
}

// LastContents returns the contents of the most recent GenerateContent call.
func (m *MockProvider) LastContents() []*genai.Content {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastContents
}

// LastContentConfig returns the config of the most recent GenerateContent call.
func (m *MockProvider) LastContentConfig() *genai.GenerateContentConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastContentConfig
}

// LastVideoRequest returns the prompt and config of the most recent GenerateVideos call.
func (m *MockProvider) LastVideoRequest() (string, *genai.GenerateVideosConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastVideoPrompt, m.lastVideoConfig
}

// MockClientFactory hands out a fixed Provider and records the keys it was asked for.
type MockClientFactory struct {
	Provider Provider
	Err      error

	mu   sync.Mutex
	keys []string
}

// NewProvider implements ClientFactory.
func (f *MockClientFactory) NewProvider(_ context.Context, apiKey string) (Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, apiKey)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Provider, nil
}

// Calls returns how many clients were constructed.
func (f *MockClientFactory) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.keys)
}

// Keys returns the API keys clients were constructed with, in order.
func (f *MockClientFactory) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.keys...)
}

// TextResponse builds a single-candidate response holding text.
func TextResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: string(genai.RoleModel), Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

// PartsResponse builds a single-candidate response holding parts.
func PartsResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: string(genai.RoleModel), Parts: parts}},
		},
	}
}

// VideoOperation builds a video operation. A non-empty uri is only attached when done.
func VideoOperation(done bool, uri string) *genai.GenerateVideosOperation {
	op := &genai.GenerateVideosOperation{Name: "operations/mock-video", Done: done}
	if done && uri != "" {
		op.Response = &genai.GenerateVideosResponse{
			GeneratedVideos: []*genai.GeneratedVideo{{Video: &genai.Video{URI: uri}}},
		}
	}
	return op
}
