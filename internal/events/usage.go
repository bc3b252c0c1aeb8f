package events

import (
	"context"
	"log/slog"
	"sync"
)

// UsageKey identifies one usage counter.
type UsageKey struct {
	Kind    string
	Outcome Outcome
}

// UsageLogHandler writes one structured log line per generation event and keeps
// per kind and outcome totals for the lifetime of the process.
type UsageLogHandler struct {
	logger *slog.Logger

	mu     sync.Mutex
	totals map[UsageKey]int
}

var _ EventHandler = (*UsageLogHandler)(nil)

// NewUsageLogHandler creates a UsageLogHandler.
func NewUsageLogHandler(logger *slog.Logger) *UsageLogHandler {
	return &UsageLogHandler{
		logger: logger.With("component", "usage_log"),
		totals: make(map[UsageKey]int),
	}
}

// HandleEvent implements EventHandler.
func (h *UsageLogHandler) HandleEvent(ctx context.Context, event *GenerationEvent) error {
	key := UsageKey{Kind: event.Kind.String(), Outcome: event.Outcome}

	h.mu.Lock()
	h.totals[key]++
	count := h.totals[key]
	h.mu.Unlock()

	h.logger.InfoContext(ctx, "generation usage",
		"event_id", event.ID,
		"kind", key.Kind,
		"outcome", key.Outcome,
		"duration_ms", event.Duration.Milliseconds(),
		"total_for_outcome", count)
	return nil
}

// Totals returns a copy of the running counters.
func (h *UsageLogHandler) Totals() map[UsageKey]int {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make(map[UsageKey]int, len(h.totals))
	for k, v := range h.totals {
		out[k] = v
	}
	return out
}
