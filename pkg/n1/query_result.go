package n1

import (
	"fmt"

	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
)

// QueryResult is one page of a paged query.
type QueryResult[C any] struct {
	cursor   string
	pageSize int
	results  C
}

// Cursor returns the cursor to pass when requesting the next page.
func (q *QueryResult[C]) Cursor() string {
	return q.cursor
}

// PageSize returns the page size the server used. Zero means there are no more pages.
func (q *QueryResult[C]) PageSize() int {
	return q.pageSize
}

// Results returns the page contents.
func (q *QueryResult[C]) Results() C {
	return q.results
}

// QueryResultFromWire converts a wire page into a client page using the default registry.
func QueryResultFromWire[C WireConvertible[W, C], W any](wire *apimodel.QueryResult[W], app *App) (*QueryResult[C], error) {
	if wire == nil {
		return nil, nil //nolint:nilnil // nil in, nil out
	}

	factory, err := ResolveFactory[W, C](defaultRegistry)
	if err != nil {
		return nil, err
	}

	results, err := factory(&wire.Results, app)
	if err != nil {
		return nil, fmt.Errorf("converting query results: %w", err)
	}

	return &QueryResult[C]{
		cursor:   wire.Cursor,
		pageSize: wire.PageSize,
		results:  results,
	}, nil
}
