package memory

import (
	"github.com/vsinha/supplychain/pkg/domain/entities"
	"github.com/vsinha/supplychain/pkg/domain/repositories"
)

// ProductRepository provides in-memory product master data storage
type ProductRepository struct {
	rows *table[entities.Product]
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository(expectedProducts int) *ProductRepository {
	return &ProductRepository{
		rows: newTable("product", expectedProducts, func(v *entities.Product) int64 { return v.ID }),
	}
}

// Verify interface compliance
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// LoadProducts loads products into the repository, rejecting the batch on duplicate ids
func (r *ProductRepository) LoadProducts(products []*entities.Product) error {
	return r.rows.load(products)
}

// GetAllProducts returns all products in insertion order
func (r *ProductRepository) GetAllProducts() ([]*entities.Product, error) {
	return r.rows.all(), nil
}
