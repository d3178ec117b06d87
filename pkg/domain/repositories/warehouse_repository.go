package repositories

import "github.com/vsinha/supplychain/pkg/domain/entities"

// WarehouseRepository provides access to warehouse master data
type WarehouseRepository interface {
	GetAllWarehouses() ([]*entities.Warehouse, error)
	LoadWarehouses(warehouses []*entities.Warehouse) error
}
