package repositories

import "github.com/vsinha/supplychain/pkg/domain/entities"

// ProductRepository provides access to product master data
type ProductRepository interface {
	GetAllProducts() ([]*entities.Product, error)
	LoadProducts(products []*entities.Product) error
}
