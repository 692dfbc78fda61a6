package n1

import (
	"context"
	"fmt"
	"iter"
)

// PageFetcher retrieves the page that starts at cursor. The first call receives an empty cursor.
type PageFetcher[C any] func(ctx context.Context, cursor string) (*QueryResult[C], error)

// Pages iterates the pages returned by fetch, one request at a time. Iteration ends after a page
// whose page size is zero or larger than its item count, or after the first error, which is
// yielded with a nil page.
func Pages[E any, C interface{ Items() []E }](ctx context.Context, fetch PageFetcher[C]) iter.Seq2[*QueryResult[C], error] {
	return func(yield func(*QueryResult[C], error) bool) {
		cursor := ""

		for pageNumber := 1; ; pageNumber++ {
			err := ctx.Err()
			if err != nil {
				yield(nil, fmt.Errorf("fetching page %d: %w", pageNumber, err))

				return
			}

			page, err := fetch(ctx, cursor)
			if err != nil {
				yield(nil, fmt.Errorf("fetching page %d: %w", pageNumber, err))

				return
			}

			if page == nil {
				return
			}

			if !yield(page, nil) {
				return
			}

			if isLastPage(page.PageSize(), len(page.Results().Items())) {
				return
			}

			cursor = page.Cursor()
		}
	}
}

// WalkPages fetches every page and returns all items in server order. Any error aborts the walk
// and no partial results are returned.
func WalkPages[E any, C interface{ Items() []E }](ctx context.Context, fetch PageFetcher[C]) ([]E, error) {
	items := make([]E, 0)

	for page, err := range Pages[E](ctx, fetch) {
		if err != nil {
			return nil, err
		}

		items = append(items, page.Results().Items()...)
	}

	return items, nil
}

func isLastPage(pageSize, itemCount int) bool {
	return pageSize == 0 || itemCount < pageSize
}
