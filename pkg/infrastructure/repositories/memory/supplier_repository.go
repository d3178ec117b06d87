package memory

import (
	"github.com/vsinha/supplychain/pkg/domain/entities"
	"github.com/vsinha/supplychain/pkg/domain/repositories"
)

// SupplierRepository provides in-memory supplier master data storage
type SupplierRepository struct {
	rows *table[entities.Supplier]
}

// NewSupplierRepository creates a new in-memory supplier repository
func NewSupplierRepository(expectedSuppliers int) *SupplierRepository {
	return &SupplierRepository{
		rows: newTable("supplier", expectedSuppliers, func(v *entities.Supplier) int64 { return v.ID }),
	}
}

// Verify interface compliance
var _ repositories.SupplierRepository = (*SupplierRepository)(nil)

// LoadSuppliers loads suppliers into the repository, rejecting the batch on duplicate ids
func (r *SupplierRepository) LoadSuppliers(suppliers []*entities.Supplier) error {
	return r.rows.load(suppliers)
}

// GetAllSuppliers returns all suppliers in insertion order
func (r *SupplierRepository) GetAllSuppliers() ([]*entities.Supplier, error) {
	return r.rows.all(), nil
}
