package api

import (
	"context"
	"sync"

	"github.com/phrazzld/clevercore-api/internal/generation"
)

// mockGenerationService implements service.GenerationService for handler tests.
type mockGenerationService struct {
	GenerateTextFn  func(ctx context.Context, prompt, tone, format string) (string, error)
	GenerateImageFn func(ctx context.Context, prompt string) (string, error)
	GenerateVideoFn func(ctx context.Context, prompt string) (string, error)
	ConverseFn      func(ctx context.Context, history []generation.ChatMessage, message string) string

	mu    sync.Mutex
	calls int
}

func (m *mockGenerationService) count() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
}

func (m *mockGenerationService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockGenerationService) GenerateText(ctx context.Context, prompt, tone, format string) (string, error) {
	m.count()
	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, prompt, tone, format)
	}
	return "mock copy", nil
}

func (m *mockGenerationService) GenerateImage(ctx context.Context, prompt string) (string, error) {
	m.count()
	if m.GenerateImageFn != nil {
		return m.GenerateImageFn(ctx, prompt)
	}
	return "data:image/png;base64,AAAA", nil
}

func (m *mockGenerationService) GenerateVideo(ctx context.Context, prompt string) (string, error) {
	m.count()
	if m.GenerateVideoFn != nil {
		return m.GenerateVideoFn(ctx, prompt)
	}
	return "https://host/v1&key=test-key", nil
}

func (m *mockGenerationService) Converse(
	ctx context.Context,
	history []generation.ChatMessage,
	message string,
) string {
	m.count()
	if m.ConverseFn != nil {
		return m.ConverseFn(ctx, history, message)
	}
	return "mock reply"
}
