package service

import (
	"context"
	"sync"

	"github.com/phrazzld/clevercore-api/internal/generation"
)

// MockGateway implements generation.Gateway for testing.
type MockGateway struct {
	DispatchFn func(ctx context.Context, req generation.Request) (generation.Result, error)
	ConverseFn func(ctx context.Context, history []generation.ChatMessage, message string) string

	mu       sync.Mutex
	requests []generation.Request
}

func (m *MockGateway) Dispatch(ctx context.Context, req generation.Request) (generation.Result, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.DispatchFn != nil {
		return m.DispatchFn(ctx, req)
	}
	return generation.Result{Kind: req.Kind(), Content: "mock " + req.Kind().String()}, nil
}

func (m *MockGateway) Converse(ctx context.Context, history []generation.ChatMessage, message string) string {
	if m.ConverseFn != nil {
		return m.ConverseFn(ctx, history, message)
	}
	return "mock reply"
}

func (m *MockGateway) Requests() []generation.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]generation.Request(nil), m.requests...)
}
