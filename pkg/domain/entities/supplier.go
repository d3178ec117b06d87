package entities

import "fmt"

// Supplier represents a vendor with a nominal delivery lead time
type Supplier struct {
	ID           int64
	Name         string
	Location     string
	LeadTimeDays int
}

// NewSupplier creates a validated Supplier
func NewSupplier(id int64, name, location string, leadTimeDays int) (*Supplier, error) {
	if id <= 0 {
		return nil, fmt.Errorf("supplier id must be positive, got %d", id)
	}
	if name == "" {
		return nil, fmt.Errorf("supplier name cannot be empty")
	}
	if leadTimeDays <= 0 {
		return nil, fmt.Errorf("lead time must be positive, got %d", leadTimeDays)
	}

	return &Supplier{
		ID:           id,
		Name:         name,
		Location:     location,
		LeadTimeDays: leadTimeDays,
	}, nil
}
