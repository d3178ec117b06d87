package csv

import (
	"context"

	"github.com/vsinha/supplychain/pkg/domain/entities"
	"github.com/vsinha/supplychain/pkg/domain/repositories"
)

// Store reads and writes a dataset directory of CSV files
type Store struct {
	dir    string
	loader *Loader
	writer *Writer
}

// NewStore creates a CSV store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir, loader: NewLoader(), writer: NewWriter()}
}

// Verify interface compliance
var (
	_ repositories.DatasetSource = (*Store)(nil)
	_ repositories.DatasetSink   = (*Store)(nil)
)

// Load reads the four CSV files
func (s *Store) Load(ctx context.Context) (*entities.Dataset, error) {
	return s.loader.LoadDataset(ctx, s.dir)
}

// Save writes the four CSV files, replacing existing ones
func (s *Store) Save(ctx context.Context, ds *entities.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.writer.WriteDataset(s.dir, ds)
}

// Close is a no-op, files are closed after each read or write
func (s *Store) Close() error {
	return nil
}
