package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/fivetwenty-io/n1-client/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyTokenManager_GetToken(t *testing.T) {
	t.Parallel()

	t.Run("returns configured key", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewAPIKeyTokenManager("  secret-key \n")
		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "secret-key", token)
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewAPIKeyTokenManager("")
		token, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, auth.ErrNoAPIKey)
		assert.Empty(t, token)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		manager := auth.NewAPIKeyTokenManager("secret-key")
		_, err := manager.GetToken(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestAPIKeyTokenManager_SetAPIKey(t *testing.T) {
	t.Parallel()

	manager := auth.NewAPIKeyTokenManager("first")

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, _ = manager.GetToken(context.Background())
		}()
	}

	manager.SetAPIKey("second")
	wg.Wait()

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}
