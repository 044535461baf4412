package records

import (
	"context"

	domrec "github.com/craterlabs/fuzzle/internal/domain/record"
)

// Repository defines the storage contract for records.
type Repository interface {
	Upsert(ctx context.Context, rec *domrec.Record) (bool, error)
	Get(ctx context.Context, id string) (domrec.Record, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domrec.Record, error)
}
