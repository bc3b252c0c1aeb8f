package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrCredentialRequired is returned when a video generation is attempted without
	// a paid-tier credential selected. It is recoverable: the caller selects a paid
	// credential and retries.
	ErrCredentialRequired = errors.New("paid API credential required")

	// ErrNoImageData is returned when an image response carries no inline image part.
	ErrNoImageData = errors.New("no image data found in response")

	// ErrNoVideoURI is returned when a completed video operation has no generated video URI.
	ErrNoVideoURI = errors.New("no video URI returned")

	// ErrPollTimeout is returned when a video operation exhausts its polling budget.
	ErrPollTimeout = errors.New("video generation did not complete in time")

	// ErrInvalidRequest is returned for requests that fail validation before dispatch.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrInvalidConfig is returned when the gateway configuration is invalid.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// GenerationError is the single caller-facing failure type for a dispatch that
// reached (or tried to reach) the provider. Message is safe to show to the user;
// Err keeps the underlying cause for logging and errors.Is checks.
type GenerationError struct {
	Kind    Kind
	Message string
	Err     error
}

// NewGenerationError builds a GenerationError. An empty message falls back to
// the generic "Failed to generate {kind}." text.
func NewGenerationError(kind Kind, message string, cause error) *GenerationError {
	if message == "" {
		message = FallbackMessage(kind)
	}
	return &GenerationError{Kind: kind, Message: message, Err: cause}
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// FallbackMessage returns the generic failure text for a kind.
func FallbackMessage(kind Kind) string {
	return fmt.Sprintf("Failed to generate %s.", kind)
}

// IsCredentialRequired reports whether err signals a missing paid credential.
func IsCredentialRequired(err error) bool {
	return errors.Is(err, ErrCredentialRequired)
}

// AsGenerationError extracts a *GenerationError from err's chain.
func AsGenerationError(err error) (*GenerationError, bool) {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr, true
	}
	return nil, false
}
