package docstore

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrUnavailable = errors.New("document store unavailable")
)

// Document is one stored record: its id within a collection plus the raw
// JSON payload.
type Document struct {
	ID   string
	Data []byte
}

// Decode unmarshals the document payload into v.
func (d Document) Decode(v interface{}) error {
	return json.Unmarshal(d.Data, v)
}

// Filter is an equality condition on a top-level document field.
type Filter struct {
	Field string
	Value interface{}
}

// Store is the generic document-database contract the payroll core depends
// on. Implementations must map "no such document" to ErrNotFound and
// transient backend failures to ErrUnavailable so callers can tell a missing
// record from an outage.
type Store interface {
	// Get returns the document stored under collection/id.
	Get(ctx context.Context, collection, id string) (Document, error)
	// Set stores value as the full document under collection/id, replacing
	// any previous content.
	Set(ctx context.Context, collection, id string, value interface{}) error
	// Update merges the partial fields into the existing document.
	// Fails with ErrNotFound if the document does not exist.
	Update(ctx context.Context, collection, id string, partial map[string]interface{}) error
	// Query returns all documents in the collection matching every filter.
	// An empty result is not an error.
	Query(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
	// ArrayUnion appends element to the named string-array field unless it
	// is already present. Fails with ErrNotFound if the document does not
	// exist.
	ArrayUnion(ctx context.Context, collection, id, field, element string) error
}
