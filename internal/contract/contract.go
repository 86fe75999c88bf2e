package contract

import (
	"context"

	"github.com/hotdata/tagtrend/schema"
)

// RecordSource loads the long table from some tabular backend.
// Implementations must return records with periods normalized to
// midnight UTC and must not return an empty slice without error.
type RecordSource interface {
	// Load reads every record from the source. It returns
	// ErrEmptyInput when the source holds zero records.
	Load(ctx context.Context) ([]schema.Record, error)
}
