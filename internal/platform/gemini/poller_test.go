package gemini

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/phrazzld/clevercore-api/internal/generation"
	"github.com/phrazzld/clevercore-api/internal/platform/logger"
	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// countingBackoff returns a near-zero unbounded backoff and a counter of the
// delays taken between status checks.
func countingBackoff() (BackoffFactory, *int32) {
	var delays int32
	factory := func() retry.Backoff {
		return retry.BackoffFunc(func() (time.Duration, bool) {
			atomic.AddInt32(&delays, 1)
			return time.Millisecond, false
		})
	}
	return factory, &delays
}

func TestPoller_Wait(t *testing.T) {
	t.Parallel()

	t.Run("already_done_needs_no_checks", func(t *testing.T) {
		t.Parallel()

		log, _ := logger.GetTestLogger(t)
		provider := &MockProvider{}
		backoff, delays := countingBackoff()

		op, err := NewPoller(provider, backoff, log).Wait(context.Background(), VideoOperation(true, "https://host/v1"))

		require.NoError(t, err)
		assert.True(t, op.Done)
		assert.Equal(t, 0, provider.CallCount("GetVideosOperation"))
		assert.Equal(t, int32(0), atomic.LoadInt32(delays))
	})

	t.Run("polls_until_done", func(t *testing.T) {
		t.Parallel()

		log, _ := logger.GetTestLogger(t)
		provider := &MockProvider{}
		provider.QueueOperations(VideoOperation(false, ""), VideoOperation(true, "https://host/v1"))
		backoff, delays := countingBackoff()

		op, err := NewPoller(provider, backoff, log).Wait(context.Background(), VideoOperation(false, ""))

		require.NoError(t, err)
		require.True(t, op.Done)
		assert.Equal(t, "https://host/v1", op.Response.GeneratedVideos[0].Video.URI)
		assert.Equal(t, 2, provider.CallCount("GetVideosOperation"))
		assert.Equal(t, int32(2), atomic.LoadInt32(delays))
	})

	t.Run("stops_after_first_done", func(t *testing.T) {
		t.Parallel()

		log, _ := logger.GetTestLogger(t)
		provider := &MockProvider{}
		provider.QueueOperations(
			VideoOperation(true, "https://host/first"),
			VideoOperation(true, "https://host/second"),
		)
		backoff, _ := countingBackoff()

		op, err := NewPoller(provider, backoff, log).Wait(context.Background(), VideoOperation(false, ""))

		require.NoError(t, err)
		assert.Equal(t, "https://host/first", op.Response.GeneratedVideos[0].Video.URI)
		assert.Equal(t, 1, provider.CallCount("GetVideosOperation"))
	})

	t.Run("checker_error_stops_polling", func(t *testing.T) {
		t.Parallel()

		log, buf := logger.GetTestLogger(t)
		checkErr := errors.New("status endpoint unavailable")
		provider := &MockProvider{
			GetVideosOperationFn: func(context.Context, *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
				return nil, checkErr
			},
		}
		backoff, delays := countingBackoff()

		op, err := NewPoller(provider, backoff, log).Wait(context.Background(), VideoOperation(false, ""))

		assert.Nil(t, op)
		assert.ErrorIs(t, err, checkErr)
		assert.Equal(t, 1, provider.CallCount("GetVideosOperation"))
		assert.Equal(t, int32(1), atomic.LoadInt32(delays))
		logger.AssertLogContains(t, buf, "video operation polling stopped")
	})

	t.Run("nil_status_is_an_error", func(t *testing.T) {
		t.Parallel()

		log, _ := logger.GetTestLogger(t)
		provider := &MockProvider{
			GetVideosOperationFn: func(context.Context, *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
				return nil, nil
			},
		}
		backoff, _ := countingBackoff()

		_, err := NewPoller(provider, backoff, log).Wait(context.Background(), VideoOperation(false, ""))

		assert.ErrorIs(t, err, errNilOperation)
	})

	t.Run("nil_operation_rejected", func(t *testing.T) {
		t.Parallel()

		provider := &MockProvider{}
		_, err := NewPoller(provider, nil, nil).Wait(context.Background(), nil)

		assert.ErrorIs(t, err, errNilOperation)
		assert.Equal(t, 0, provider.TotalCalls())
	})

	t.Run("budget_exhausted", func(t *testing.T) {
		t.Parallel()

		log, buf := logger.GetTestLogger(t)
		provider := &MockProvider{
			GetVideosOperationFn: func(context.Context, *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
				return VideoOperation(false, ""), nil
			},
		}

		_, err := NewPoller(provider, PollBackoff(time.Millisecond, 2, 0), log).
			Wait(context.Background(), VideoOperation(false, ""))

		assert.ErrorIs(t, err, generation.ErrPollTimeout)
		assert.Equal(t, 2, provider.CallCount("GetVideosOperation"))
		logger.AssertLogContains(t, buf, "polling budget exhausted")
	})

	t.Run("context_cancelled", func(t *testing.T) {
		t.Parallel()

		log, _ := logger.GetTestLogger(t)
		provider := &MockProvider{
			GetVideosOperationFn: func(ctx context.Context, _ *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return VideoOperation(false, ""), nil
			},
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewPoller(provider, PollBackoff(time.Millisecond, 0, 0), log).Wait(ctx, VideoOperation(false, ""))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPollBackoff(t *testing.T) {
	t.Parallel()

	t.Run("bounded_by_checks", func(t *testing.T) {
		t.Parallel()

		b := PollBackoff(time.Second, 3, 0)()
		for i := 0; i < 3; i++ {
			d, stop := b.Next()
			require.False(t, stop, "step %d", i)
			assert.Equal(t, time.Second, d)
		}
		_, stop := b.Next()
		assert.True(t, stop)
	})

	t.Run("unbounded", func(t *testing.T) {
		t.Parallel()

		b := PollBackoff(time.Second, 0, 0)()
		for i := 0; i < 500; i++ {
			_, stop := b.Next()
			require.False(t, stop)
		}
	})

	t.Run("non_positive_interval_uses_default", func(t *testing.T) {
		t.Parallel()

		d, stop := PollBackoff(0, 0, 0)().Next()
		assert.False(t, stop)
		assert.Equal(t, DefaultPollInterval, d)
	})

	t.Run("fresh_policy_per_run", func(t *testing.T) {
		t.Parallel()

		factory := PollBackoff(time.Second, 1, 0)
		first := factory()
		_, _ = first.Next()
		_, stop := first.Next()
		require.True(t, stop)

		_, stop = factory().Next()
		assert.False(t, stop)
	})
}
