package n1

import (
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryRegistry_ResolveProbesOnce(t *testing.T) {
	t.Parallel()

	registry := NewFactoryRegistry()
	key := registryKey{wire: reflect.TypeFor[apimodel.TagCollection](), client: reflect.TypeFor[*TagCollection]()}

	var builds atomic.Int32

	build := func() (any, error) {
		builds.Add(1)

		return Factory[apimodel.TagCollection, *TagCollection](TagCollectionFromWire), nil
	}

	var wg sync.WaitGroup

	for range 32 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			value, err := registry.resolve(key, build)
			assert.NoError(t, err)
			assert.NotNil(t, value)
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), builds.Load())
	assert.Equal(t, 1, registry.Len())
}

func TestFactoryRegistry_FailureIsMemoized(t *testing.T) {
	t.Parallel()

	registry := NewFactoryRegistry()
	key := registryKey{wire: reflect.TypeFor[apimodel.Tag](), client: reflect.TypeFor[*Tag]()}

	builds := 0
	build := func() (any, error) {
		builds++

		return nil, &ConfigurationError{Type: "*n1.Tag", Err: ErrFactoryNotRegistered}
	}

	_, first := registry.resolve(key, build)
	_, second := registry.resolve(key, build)

	require.ErrorIs(t, first, ErrFactoryNotRegistered)
	assert.Same(t, first, second)
	assert.Equal(t, 1, builds)
}

func TestResolveFactory_UsesRegistryCache(t *testing.T) {
	t.Parallel()

	registry := NewFactoryRegistry()

	first, err := ResolveFactory[apimodel.FieldCollection, *FieldCollection](registry)
	require.NoError(t, err)

	second, err := ResolveFactory[apimodel.FieldCollection, *FieldCollection](registry)
	require.NoError(t, err)

	assert.Equal(t, 1, registry.Len())
	assert.Equal(t, reflect.ValueOf(first).Pointer(), reflect.ValueOf(second).Pointer())
}
