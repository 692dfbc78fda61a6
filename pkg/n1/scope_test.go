package n1_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/fivetwenty-io/n1-client/pkg/n1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scopedLabel string

type otherLabel string

func TestRunWithContext_BindsInnermostFrame(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	got, err := n1.RunWithContext(ctx, scopedLabel("outer"), func(ctx context.Context) (scopedLabel, error) {
		value, ok := n1.CurrentOrDefault[scopedLabel](ctx)
		require.True(t, ok)

		return value, nil
	})
	require.NoError(t, err)
	assert.Equal(t, scopedLabel("outer"), got)

	_, ok := n1.CurrentOrDefault[scopedLabel](ctx)
	assert.False(t, ok, "frame must not leak into the parent context")
}

func TestRunWithContext_NestedFramesShadow(t *testing.T) {
	t.Parallel()

	err := n1.DoWithContext(context.Background(), scopedLabel("outer"), func(ctx context.Context) error {
		return n1.DoWithContext(ctx, otherLabel("inner"), func(ctx context.Context) error {
			inner, ok := n1.CurrentOrDefault[otherLabel](ctx)
			assert.True(t, ok)
			assert.Equal(t, otherLabel("inner"), inner)

			_, ok = n1.CurrentOrDefault[scopedLabel](ctx)
			assert.False(t, ok, "outer frame is shadowed by the inner one")

			return nil
		})
	})
	require.NoError(t, err)
}

func TestRunWithContext_SameTypeInnerWins(t *testing.T) {
	t.Parallel()

	_ = n1.DoWithContext(context.Background(), scopedLabel("outer"), func(ctx context.Context) error {
		return n1.DoWithContext(ctx, scopedLabel("inner"), func(ctx context.Context) error {
			value, _ := n1.CurrentOrDefault[scopedLabel](ctx)
			assert.Equal(t, scopedLabel("inner"), value)

			return nil
		})
	})
}

func TestRunWithContext_PanicLeavesNoFrame(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	assert.Panics(t, func() {
		_ = n1.DoWithContext(ctx, scopedLabel("doomed"), func(ctx context.Context) error {
			panic("action failed")
		})
	})

	_, ok := n1.CurrentOrDefault[scopedLabel](ctx)
	assert.False(t, ok)
}

func TestRunWithContext_IsolatedAcrossGoroutines(t *testing.T) {
	t.Parallel()

	const workers = 16

	var wg sync.WaitGroup

	results := make([]scopedLabel, workers)

	for i := range workers {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			want := scopedLabel(fmt.Sprintf("worker-%d", i))
			results[i], _ = n1.RunWithContext(context.Background(), want, func(ctx context.Context) (scopedLabel, error) {
				value, _ := n1.CurrentOrDefault[scopedLabel](ctx)

				return value, nil
			})
		}(i)
	}

	wg.Wait()

	for i, got := range results {
		assert.Equal(t, scopedLabel(fmt.Sprintf("worker-%d", i)), got)
	}
}

type defaultedLabel string

// Not parallel: the process default is shared state.
func TestCurrentOrDefault_FallsBackToDefault(t *testing.T) {
	n1.SetDefault(defaultedLabel("fallback"))
	t.Cleanup(n1.ClearDefault[defaultedLabel])

	value, ok := n1.CurrentOrDefault[defaultedLabel](context.Background())
	require.True(t, ok)
	assert.Equal(t, defaultedLabel("fallback"), value)

	err := n1.DoWithContext(context.Background(), defaultedLabel("scoped"), func(ctx context.Context) error {
		value, _ := n1.CurrentOrDefault[defaultedLabel](ctx)
		assert.Equal(t, defaultedLabel("scoped"), value)

		return nil
	})
	require.NoError(t, err)
}

func TestAppFrom(t *testing.T) {
	explicit := n1.NewApp(n1.Options{APIKey: "explicit"})
	scoped := n1.NewApp(n1.Options{APIKey: "scoped"})
	fallback := n1.NewApp(n1.Options{APIKey: "default"})

	t.Run("explicit wins", func(t *testing.T) {
		ctx := n1.WithScope(context.Background(), scoped)

		app, err := n1.AppFrom(ctx, explicit)
		require.NoError(t, err)
		assert.Same(t, explicit, app)
	})

	t.Run("scope before default", func(t *testing.T) {
		n1.SetDefault(fallback)
		t.Cleanup(n1.ClearDefault[*n1.App])

		app, err := n1.AppFrom(n1.WithScope(context.Background(), scoped), nil)
		require.NoError(t, err)
		assert.Same(t, scoped, app)

		app, err = n1.AppFrom(context.Background(), nil)
		require.NoError(t, err)
		assert.Same(t, fallback, app)
	})

	t.Run("nothing bound", func(t *testing.T) {
		_, err := n1.AppFrom(context.Background(), nil)
		require.ErrorIs(t, err, n1.ErrNoApp)

		var configErr *n1.ConfigurationError
		require.ErrorAs(t, err, &configErr)
	})
}
