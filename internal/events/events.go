package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/clevercore-api/internal/generation"
)

// Outcome summarizes how a generation request ended.
type Outcome string

const (
	OutcomeSucceeded          Outcome = "succeeded"
	OutcomeFailed             Outcome = "failed"
	OutcomeCredentialRequired Outcome = "credential_required"
	OutcomeRejected           Outcome = "rejected"
)

// OutcomeOf maps a dispatch error to its Outcome.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSucceeded
	case generation.IsCredentialRequired(err):
		return OutcomeCredentialRequired
	case errors.Is(err, generation.ErrInvalidRequest):
		return OutcomeRejected
	default:
		return OutcomeFailed
	}
}

// GenerationEvent records one finished generation request. It never carries the
// prompt or the generated content.
type GenerationEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	Kind    generation.Kind `json:"kind"`
	Outcome Outcome         `json:"outcome"`

	// Duration is the wall-clock time spent in the gateway
	Duration time.Duration `json:"duration"`

	OccurredAt time.Time `json:"occurred_at"`
}

// NewGenerationEvent creates an event for a request of kind that took duration
// and ended with err.
func NewGenerationEvent(kind generation.Kind, duration time.Duration, err error) *GenerationEvent {
	return &GenerationEvent{
		ID:         uuid.New(),
		Kind:       kind,
		Outcome:    OutcomeOf(err),
		Duration:   duration,
		OccurredAt: time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	HandleEvent(ctx context.Context, event *GenerationEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(ctx context.Context, event *GenerationEvent) error
}
