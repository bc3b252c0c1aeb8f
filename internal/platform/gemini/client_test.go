package gemini

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/clevercore-api/internal/config"
	"github.com/phrazzld/clevercore-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func videoDefaults() config.VideoConfig {
	return config.VideoConfig{PollIntervalSeconds: 5, MaxPollAttempts: 120, PollTimeoutMinutes: 15}
}

func TestSDKClientFactory_NewProvider(t *testing.T) {
	t.Parallel()

	t.Run("blank_key_rejected", func(t *testing.T) {
		t.Parallel()

		provider, err := SDKClientFactory{}.NewProvider(context.Background(), "   ")

		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
		assert.Nil(t, provider)
	})

	t.Run("builds_provider", func(t *testing.T) {
		t.Parallel()

		factory := SDKClientFactory{BaseURL: "http://127.0.0.1:0/", HTTPTimeout: time.Second}
		provider, err := factory.NewProvider(context.Background(), "test-key")

		require.NoError(t, err)
		assert.NotNil(t, provider)
	})

	t.Run("fresh_provider_per_call", func(t *testing.T) {
		t.Parallel()

		factory := SDKClientFactory{}
		first, err := factory.NewProvider(context.Background(), "key-one")
		require.NoError(t, err)
		second, err := factory.NewProvider(context.Background(), "key-two")
		require.NoError(t, err)

		assert.NotSame(t, first, second)
	})
}
