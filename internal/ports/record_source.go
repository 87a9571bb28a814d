package ports

import (
	"context"

	"studiohub/internal/domain"
)

// RecordSource executes read/query operations against a record store.
// The FileMaker adapter and the in-memory store share this contract.
type RecordSource interface {
	// Find runs a disjunctive query against a layout. A "no matching
	// records" response yields an empty slice, not an error.
	Find(ctx context.Context, layout string, query domain.Query, limit int) ([]domain.RawRecord, error)

	// GetAll pages through a layout. Offset is 1-based, matching the
	// remote store's convention.
	GetAll(ctx context.Context, layout string, limit, offset int) ([]domain.RawRecord, error)

	// GetByID fetches a single record, failing with domain.ErrNotFound
	// when absent.
	GetByID(ctx context.Context, layout, id string) (domain.RawRecord, error)

	// LayoutMetadata describes the fields of a layout.
	LayoutMetadata(ctx context.Context, layout string) (domain.LayoutMetadata, error)
}
