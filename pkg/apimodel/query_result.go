package apimodel

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Envelope is the typed outer shape of a paged response. Results holds the raw body the
// collection is parsed from; the collection's named array sits in the same object as Cursor
// and PageSize.
type Envelope struct {
	Cursor   string
	PageSize int
	Results  json.RawMessage
}

type envelopeFields struct {
	Cursor   *string `json:"Cursor"`
	PageSize *int    `json:"PageSize"`
}

// ParseEnvelope extracts the paging fields from a paged response body. The body must be a JSON
// object; a missing PageSize reads as 0, which callers treat as "no further pages".
func ParseEnvelope(data []byte) (*Envelope, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, decodeError("query result envelope", ErrNotAnObject)
	}

	var fields envelopeFields

	err := json.Unmarshal(trimmed, &fields)
	if err != nil {
		return nil, decodeError("query result envelope", err)
	}

	envelope := &Envelope{Results: json.RawMessage(trimmed)}

	if fields.Cursor != nil {
		envelope.Cursor = *fields.Cursor
	}

	if fields.PageSize != nil {
		if *fields.PageSize < 0 {
			return nil, decodeError("query result envelope", fmt.Errorf("%w: %d", ErrNegativePageSize, *fields.PageSize))
		}

		envelope.PageSize = *fields.PageSize
	}

	return envelope, nil
}

// QueryResult is a page of wire entities together with its continuation cursor.
type QueryResult[WC any] struct {
	Cursor   string
	PageSize int
	Results  WC
}

// QueryResultFromJSON parses a paged response body into a typed wire result.
func QueryResultFromJSON[WC any](data []byte) (*QueryResult[WC], error) {
	envelope, err := ParseEnvelope(data)
	if err != nil {
		return nil, err
	}

	return QueryResultFromEnvelope[WC](envelope)
}

// QueryResultFromEnvelope parses the envelope's results as an object-root collection.
func QueryResultFromEnvelope[WC any](envelope *Envelope) (*QueryResult[WC], error) {
	results, err := CollectionFromJSON[WC](envelope.Results)
	if err != nil {
		return nil, err
	}

	return &QueryResult[WC]{
		Cursor:   envelope.Cursor,
		PageSize: envelope.PageSize,
		Results:  *results,
	}, nil
}
