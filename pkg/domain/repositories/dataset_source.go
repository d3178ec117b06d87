package repositories

import (
	"context"

	"github.com/vsinha/supplychain/pkg/domain/entities"
)

// DatasetSource reads a complete entity snapshot from a backing store.
// Callers must Close the source on every exit path.
type DatasetSource interface {
	Load(ctx context.Context) (*entities.Dataset, error)
	Close() error
}

// DatasetSink persists a complete entity snapshot, replacing previous contents
type DatasetSink interface {
	Save(ctx context.Context, dataset *entities.Dataset) error
	Close() error
}
