package n1

import (
	"reflect"
	"sync"
)

// WireConvertible is implemented by client collection types that can be built from their wire
// form. Implementations must not dereference the receiver: the registry calls FromWire on the
// zero value of the type.
type WireConvertible[W any, C any] interface {
	FromWire(wire *W, app *App) (C, error)
}

// Factory converts a wire value into its client counterpart.
type Factory[W any, C any] func(wire *W, app *App) (C, error)

type registryKey struct {
	wire   reflect.Type
	client reflect.Type
}

type registryEntry struct {
	once    sync.Once
	factory any
	err     error
}

// FactoryRegistry caches one Factory per (wire, client) type pair. Entries are resolved on first
// use and never change afterwards, including failed resolutions.
type FactoryRegistry struct {
	entries sync.Map // registryKey -> *registryEntry
}

// NewFactoryRegistry creates an empty registry.
func NewFactoryRegistry() *FactoryRegistry {
	return &FactoryRegistry{}
}

//nolint:gochecknoglobals // process-wide registry shared by every QueryResultFromWire call
var defaultRegistry = NewFactoryRegistry()

// DefaultRegistry returns the registry used by QueryResultFromWire.
func DefaultRegistry() *FactoryRegistry {
	return defaultRegistry
}

// Len returns the number of resolved entries.
func (r *FactoryRegistry) Len() int {
	count := 0

	r.entries.Range(func(_, _ any) bool {
		count++

		return true
	})

	return count
}

// resolve runs build at most once per key, even under concurrent first use.
func (r *FactoryRegistry) resolve(key registryKey, build func() (any, error)) (any, error) {
	value, _ := r.entries.LoadOrStore(key, &registryEntry{})
	entry := value.(*registryEntry) //nolint:forcetypeassert // only *registryEntry is stored

	entry.once.Do(func() {
		entry.factory, entry.err = build()
	})

	return entry.factory, entry.err
}

// ResolveFactory returns the Factory converting W into C. C is checked for the WireConvertible
// capability the first time the pair is requested; a type without it yields a
// *ConfigurationError wrapping ErrFactoryNotRegistered, and the same error on every later call.
func ResolveFactory[W any, C any](registry *FactoryRegistry) (Factory[W, C], error) {
	key := registryKey{wire: reflect.TypeFor[W](), client: reflect.TypeFor[C]()}

	value, err := registry.resolve(key, func() (any, error) {
		var zero C

		convertible, ok := any(zero).(WireConvertible[W, C])
		if !ok {
			return nil, &ConfigurationError{Type: key.client.String(), Err: ErrFactoryNotRegistered}
		}

		return Factory[W, C](convertible.FromWire), nil
	})
	if err != nil {
		return nil, err
	}

	return value.(Factory[W, C]), nil //nolint:forcetypeassert // the key pins the stored type
}
