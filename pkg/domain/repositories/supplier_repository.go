package repositories

import "github.com/vsinha/supplychain/pkg/domain/entities"

// SupplierRepository provides access to supplier master data
type SupplierRepository interface {
	GetAllSuppliers() ([]*entities.Supplier, error)
	LoadSuppliers(suppliers []*entities.Supplier) error
}
