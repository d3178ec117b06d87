package entities

import "fmt"

// Product represents a shippable item with a free-text category
type Product struct {
	ID       int64
	Name     string
	Category string
}

// NewProduct creates a validated Product
func NewProduct(id int64, name, category string) (*Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("product id must be positive, got %d", id)
	}
	if name == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}

	return &Product{ID: id, Name: name, Category: category}, nil
}
