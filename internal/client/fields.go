package client

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	internalhttp "github.com/fivetwenty-io/n1-client/internal/http"
	"github.com/fivetwenty-io/n1-client/pkg/apimodel"
	"github.com/fivetwenty-io/n1-client/pkg/n1"
)

// FieldClient implements n1.FieldClient.
type FieldClient struct {
	project *ProjectClient
	id      string
}

// ID implements n1.FieldClient.ID.
func (f *FieldClient) ID() string {
	return f.id
}

// App implements n1.FieldClient.App.
func (f *FieldClient) App() *n1.App {
	return f.project.client.app
}

func (f *FieldClient) listItemsPath() string {
	return fieldPath(pathProjectFieldListItems, f.project.organizationID, f.project.id, f.id)
}

// GetListItems implements n1.FieldClient.GetListItems.
func (f *FieldClient) GetListItems(ctx context.Context, query *n1.ListItemsQuery) (*n1.FieldListItemCollection, error) {
	resp, err := f.project.client.httpClient.Get(ctx, f.listItemsPath(), query.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing field list items: %w", err)
	}

	wire, err := apimodel.CollectionFromJSONArray[apimodel.FieldListItemCollection](resp.Body, apimodel.ParseEntity[apimodel.FieldListItem])
	if err != nil {
		return nil, fmt.Errorf("parsing field list items: %w", err)
	}

	return convertCollection[*n1.FieldListItemCollection](wire, f.App())
}

// GetAllListItemsNoIDs implements n1.FieldClient.GetAllListItemsNoIDs.
func (f *FieldClient) GetAllListItemsNoIDs(ctx context.Context, valueFilter, parentValue string) (*n1.FieldListItemCollection, error) {
	query := (&n1.ListItemsQuery{ValueFilter: valueFilter, ParentValue: parentValue}).ToValues()
	query.Set("getAllAsFlatFile", "true")

	resp, err := f.project.client.httpClient.Get(ctx, f.listItemsPath(), query)
	if err != nil {
		return nil, fmt.Errorf("downloading field list items: %w", err)
	}

	wire, err := parseListItemsFlatFile(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing field list items flat file: %w", err)
	}

	return convertCollection[*n1.FieldListItemCollection](wire, f.App())
}

// parseListItemsFlatFile reads the headerless CSV export of a selection list. One column holds
// the value; two columns hold the parent value followed by the value.
func parseListItemsFlatFile(data []byte) (*apimodel.FieldListItemCollection, error) {
	reader := csv.NewReader(bytes.NewReader(data))

	wire := &apimodel.FieldListItemCollection{FieldListItems: []apimodel.FieldListItem{}}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		item := apimodel.FieldListItem{}

		switch len(record) {
		case 1:
			item.Value = record[0]
		case 2:
			item.ParentValue = record[0]
			item.Value = record[1]
		default:
			return nil, fmt.Errorf("%w: got %d", n1.ErrMalformedFlatFile, len(record))
		}

		wire.FieldListItems = append(wire.FieldListItems, item)
	}

	return wire, nil
}

// AddListItems implements n1.FieldClient.AddListItems.
func (f *FieldClient) AddListItems(ctx context.Context, items *n1.FieldListItemCollection) error {
	wire := items.ToWire()

	req, err := jsonArrayRequest[apimodel.FieldListItem](http.MethodPost, f.listItemsPath(), nil, &wire)
	if err != nil {
		return err
	}

	_, err = f.project.client.httpClient.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("adding field list items: %w", err)
	}

	return nil
}

// SetListItems implements n1.FieldClient.SetListItems.
func (f *FieldClient) SetListItems(ctx context.Context, values []string) error {
	_, err := f.project.client.httpClient.Do(ctx, &internalhttp.Request{
		Method:      http.MethodPost,
		Path:        f.listItemsPath(),
		Query:       url.Values{"type": []string{"file"}},
		RawBody:     []byte(strings.Join(values, "\n") + "\n"),
		ContentType: "text/plain",
	})
	if err != nil {
		return fmt.Errorf("setting field list items: %w", err)
	}

	return nil
}
