package entities

import "fmt"

// Warehouse represents a receiving location for shipments
type Warehouse struct {
	ID       int64
	Name     string
	Location string
}

// NewWarehouse creates a validated Warehouse
func NewWarehouse(id int64, name, location string) (*Warehouse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("warehouse id must be positive, got %d", id)
	}
	if name == "" {
		return nil, fmt.Errorf("warehouse name cannot be empty")
	}

	return &Warehouse{ID: id, Name: name, Location: location}, nil
}
