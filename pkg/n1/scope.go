package n1

import (
	"context"
	"reflect"
	"sync"
)

type scopeKey struct{}

// scopeFrame holds the values bound by one WithScope call.
type scopeFrame struct {
	values map[reflect.Type]any
}

//nolint:gochecknoglobals // process-wide fallbacks for CurrentOrDefault
var defaults sync.Map // reflect.Type -> any

// WithScope returns a context carrying a new frame that binds value under the type V. Lookups
// through the returned context see only this frame; outer frames are shadowed.
func WithScope[V any](ctx context.Context, value V) context.Context {
	frame := &scopeFrame{values: map[reflect.Type]any{reflect.TypeFor[V](): value}}

	return context.WithValue(ctx, scopeKey{}, frame)
}

// RunWithContext runs action with value bound in a new innermost frame. The frame exists only in
// the context handed to action, so it is gone once action returns or panics.
func RunWithContext[V any, R any](ctx context.Context, value V, action func(ctx context.Context) (R, error)) (R, error) {
	return action(WithScope(ctx, value))
}

// DoWithContext is RunWithContext for actions without a result.
func DoWithContext[V any](ctx context.Context, value V, action func(ctx context.Context) error) error {
	return action(WithScope(ctx, value))
}

// CurrentOrDefault returns the T bound in the innermost frame of ctx, or the process default
// for T when the frame has none.
func CurrentOrDefault[T any](ctx context.Context) (T, bool) {
	if ctx != nil {
		if frame, ok := ctx.Value(scopeKey{}).(*scopeFrame); ok {
			if value, found := frame.values[reflect.TypeFor[T]()]; found {
				typed, _ := value.(T)

				return typed, true
			}
		}
	}

	return Default[T]()
}

// SetDefault sets the process-wide fallback for T.
func SetDefault[T any](value T) {
	defaults.Store(reflect.TypeFor[T](), value)
}

// ClearDefault removes the process-wide fallback for T.
func ClearDefault[T any]() {
	defaults.Delete(reflect.TypeFor[T]())
}

// Default returns the process-wide fallback for T.
func Default[T any]() (T, bool) {
	value, ok := defaults.Load(reflect.TypeFor[T]())
	if !ok {
		var zero T

		return zero, false
	}

	typed, _ := value.(T)

	return typed, true
}

// AppFrom resolves the App to use for a call: explicit wins, then the App bound to ctx, then the
// default App.
func AppFrom(ctx context.Context, explicit *App) (*App, error) {
	if explicit != nil {
		return explicit, nil
	}

	app, ok := CurrentOrDefault[*App](ctx)
	if ok && app != nil {
		return app, nil
	}

	return nil, &ConfigurationError{Type: "*n1.App", Err: ErrNoApp}
}
