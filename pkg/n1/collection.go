package n1

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// EntityCollection is an ordered, immutable list of client entities sharing one App. Concrete
// collection types embed it.
type EntityCollection[E any] struct {
	items []E
	app   *App
}

func newEntityCollection[E any](app *App, items []E) EntityCollection[E] {
	if items == nil {
		items = []E{}
	}

	return EntityCollection[E]{items: items, app: app}
}

// Items returns a copy of the collection's items.
func (c EntityCollection[E]) Items() []E {
	return slices.Clone(c.items)
}

// Len returns the number of items.
func (c EntityCollection[E]) Len() int {
	return len(c.items)
}

// At returns the item at index i.
func (c EntityCollection[E]) At(i int) E {
	return c.items[i]
}

// All iterates the items in order.
func (c EntityCollection[E]) All() iter.Seq2[int, E] {
	return slices.All(c.items)
}

// App returns the App the collection belongs to.
func (c EntityCollection[E]) App() *App {
	return c.app
}

// entitiesFromWire converts each wire entity in order.
func entitiesFromWire[W any, E any](wire []W, app *App, convert func(*W, *App) (E, error)) ([]E, error) {
	items := make([]E, 0, len(wire))

	for i := range wire {
		item, err := convert(&wire[i], app)
		if err != nil {
			return nil, fmt.Errorf("converting item %d: %w", i, err)
		}

		items = append(items, item)
	}

	return items, nil
}

func entitiesToWire[E interface{ ToWire() W }, W any](items []E) []W {
	wire := make([]W, 0, len(items))
	for _, item := range items {
		wire = append(wire, item.ToWire())
	}

	return wire
}

// valueOf reads a nullable wire value, treating nil as the zero value.
func valueOf[T any](p *T) T {
	if p == nil {
		var zero T

		return zero
	}

	return *p
}

func ptrTo[T any](v T) *T {
	return &v
}

func cloneValuesMap(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}

	clone := make(map[string][]string, len(m))
	for key, values := range m {
		clone[key] = slices.Clone(values)
	}

	return clone
}

func cloneMetadata(entries []map[string]string) []map[string]string {
	if entries == nil {
		return nil
	}

	clone := make([]map[string]string, 0, len(entries))
	for _, entry := range entries {
		clone = append(clone, maps.Clone(entry))
	}

	return clone
}
