package generation

import "context"

// Gateway dispatches generation requests to an external AI provider.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Gateway interface {
	// Dispatch runs a single generation request and returns its display-ready result.
	//
	// Errors are always one of: ErrCredentialRequired (video without a paid
	// credential), *GenerationError (any provider or payload failure), or
	// ErrInvalidRequest (malformed request, nothing sent).
	Dispatch(ctx context.Context, req Request) (Result, error)

	// Converse sends the prior transcript and a new user message to the chat
	// assistant. It never fails: provider errors are absorbed into a canned reply.
	Converse(ctx context.Context, history []ChatMessage, message string) string
}
