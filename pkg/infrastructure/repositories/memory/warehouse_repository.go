package memory

import (
	"github.com/vsinha/supplychain/pkg/domain/entities"
	"github.com/vsinha/supplychain/pkg/domain/repositories"
)

// WarehouseRepository provides in-memory warehouse master data storage
type WarehouseRepository struct {
	rows *table[entities.Warehouse]
}

// NewWarehouseRepository creates a new in-memory warehouse repository
func NewWarehouseRepository(expectedWarehouses int) *WarehouseRepository {
	return &WarehouseRepository{
		rows: newTable("warehouse", expectedWarehouses, func(v *entities.Warehouse) int64 { return v.ID }),
	}
}

// Verify interface compliance
var _ repositories.WarehouseRepository = (*WarehouseRepository)(nil)

// LoadWarehouses loads warehouses into the repository, rejecting the batch on duplicate ids
func (r *WarehouseRepository) LoadWarehouses(warehouses []*entities.Warehouse) error {
	return r.rows.load(warehouses)
}

// GetAllWarehouses returns all warehouses in insertion order
func (r *WarehouseRepository) GetAllWarehouses() ([]*entities.Warehouse, error) {
	return r.rows.all(), nil
}
