package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/clevercore-api/internal/generation"
	"github.com/phrazzld/clevercore-api/internal/redact"
	"github.com/sethvargo/go-retry"
	"google.golang.org/genai"
)

// DefaultPollInterval is the delay between two status checks of a video operation.
const DefaultPollInterval = 5 * time.Second

var (
	errOperationPending = errors.New("video operation still running")
	errNilOperation     = errors.New("provider returned no operation handle")
)

// BackoffFactory produces a fresh backoff policy for one polling run.
type BackoffFactory func() retry.Backoff

// PollBackoff returns a constant-delay policy bounded by maxChecks status checks
// after submission and by a wall-clock timeout. Zero disables the respective bound.
func PollBackoff(interval time.Duration, maxChecks int, timeout time.Duration) BackoffFactory {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	return func() retry.Backoff {
		b := retry.NewConstant(interval)
		if maxChecks > 0 {
			b = retry.WithMaxRetries(uint64(maxChecks), b)
		}
		if timeout > 0 {
			b = retry.WithMaxDuration(timeout, b)
		}
		return b
	}
}

// Poller waits for a submitted video operation to reach a terminal state.
//
// The operation returned by submission counts as the first status check. While
// it reports Done == false the poller sleeps one backoff step and checks again;
// it stops at the first Done == true, at the first checker error, when the
// backoff budget is exhausted, or when ctx is cancelled.
type Poller struct {
	checker    OperationChecker
	newBackoff BackoffFactory
	logger     *slog.Logger
}

// NewPoller creates a Poller.
func NewPoller(checker OperationChecker, newBackoff BackoffFactory, logger *slog.Logger) *Poller {
	if newBackoff == nil {
		newBackoff = PollBackoff(DefaultPollInterval, 0, 0)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{checker: checker, newBackoff: newBackoff, logger: logger}
}

// Wait polls op until it completes and returns the terminal operation.
func (p *Poller) Wait(
	ctx context.Context,
	op *genai.GenerateVideosOperation,
) (*genai.GenerateVideosOperation, error) {
	if op == nil {
		return nil, errNilOperation
	}

	current := op
	checks := 0
	started := time.Now()

	err := retry.Do(ctx, p.newBackoff(), func(ctx context.Context) error {
		if checks > 0 {
			next, err := p.checker.GetVideosOperation(ctx, current)
			if err != nil {
				return err
			}
			if next == nil {
				return errNilOperation
			}
			current = next
		}
		checks++

		if current.Done {
			return nil
		}

		p.logger.DebugContext(ctx, "video operation pending",
			"operation", current.Name,
			"checks", checks)
		return retry.RetryableError(errOperationPending)
	})

	switch {
	case err == nil:
		p.logger.InfoContext(ctx, "video operation completed",
			"operation", current.Name,
			"checks", checks,
			"elapsed_ms", time.Since(started).Milliseconds())
		return current, nil
	case errors.Is(err, errOperationPending):
		p.logger.WarnContext(ctx, "video operation polling budget exhausted",
			"operation", current.Name,
			"checks", checks)
		return nil, fmt.Errorf("%w after %d status checks", generation.ErrPollTimeout, checks)
	default:
		p.logger.WarnContext(ctx, "video operation polling stopped",
			"operation", current.Name,
			"checks", checks,
			"error", redact.Error(err))
		return nil, err
	}
}
