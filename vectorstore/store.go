package vectorstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no record exists for the id.
// Callers must be able to tell a missing record apart from a store
// failure, so implementations never wrap transport errors in it.
var ErrNotFound = errors.New("vector record not found")

// Metadata keys and type values shared by the ingestion pipeline and
// the query service.
const (
	TypeSummary = "summary"
	TypeChunk   = "chunk"
)

// Record is one upserted entry: a text payload with its precomputed
// embedding and free-form metadata.
type Record struct {
	ID        string         `bson:"_id" json:"id"`
	Text      string         `bson:"text" json:"text"`
	Embedding []float64      `bson:"embedding" json:"embedding"`
	Metadata  map[string]any `bson:"metadata" json:"metadata"`
}

// Store is the persistent vector store: a key-value store of Records
// with nearest-neighbor listing done client-side over ListByType.
type Store interface {
	// Upsert inserts or overwrites records by id.
	Upsert(ctx context.Context, records ...Record) error
	// Get returns the record for the id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Record, error)
	// DeleteBySource removes all records of the given metadata type
	// belonging to the given source document.
	DeleteBySource(ctx context.Context, source, recordType string) error
	// ListByType returns all records of the given metadata type.
	ListByType(ctx context.Context, recordType string) ([]Record, error)
}
