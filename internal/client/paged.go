package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	internalhttp "github.com/fivetwenty-io/n1-client/internal/http"
	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
	"github.com/fivetwenty-io/n1-client/pkg/n1"
)

// getItemsPaged fetches one page from path and converts it through the factory registry.
func getItemsPaged[C n1.WireConvertible[W, C], W any](ctx context.Context, c *Client, path string, query url.Values, cursor string) (*n1.QueryResult[C], error) {
	standard := n1.StandardQuery{Cursor: cursor}

	resp, err := c.httpClient.Get(ctx, path, n1.MergeValues(standard.ToValues(), query))
	if err != nil {
		return nil, err
	}

	wire, err := apimodel.QueryResultFromJSON[W](resp.Body)
	if err != nil {
		return nil, err
	}

	return n1.QueryResultFromWire[C](wire, c.app)
}

// convertCollection converts a wire collection through the factory registry.
func convertCollection[C n1.WireConvertible[W, C], W any](wire *W, app *n1.App) (C, error) {
	factory, err := n1.ResolveFactory[W, C](n1.DefaultRegistry())
	if err != nil {
		var zero C

		return zero, err
	}

	return factory(wire, app)
}

// jsonArrayRequest builds a request whose body is the collection's items as a bare JSON array.
func jsonArrayRequest[E any](method, path string, query url.Values, collection apimodel.Collection[E]) (*internalhttp.Request, error) {
	body, err := apimodel.CollectionToJSONArray(collection)
	if err != nil {
		return nil, err
	}

	return &internalhttp.Request{
		Method:      method,
		Path:        path,
		Query:       query,
		RawBody:     body,
		ContentType: "application/json",
	}, nil
}

// deleteByID sends the {"IDs":[id]} body used by the bulk delete endpoints.
func (c *Client) deleteByID(ctx context.Context, path, id string) error {
	_, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method: http.MethodDelete,
		Path:   path,
		Body:   apimodel.IDList{IDs: []string{id}},
	})
	if err != nil {
		return fmt.Errorf("deleting %s: %w", id, err)
	}

	return nil
}
