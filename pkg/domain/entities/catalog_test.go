package entities

import (
	"strings"
	"testing"
)

func TestNewSupplier_Validation(t *testing.T) {
	supplier, err := NewSupplier(3, "Asia Logistics Hub", "Singapore", 15)
	if err != nil {
		t.Fatalf("Expected valid supplier creation to succeed: %v", err)
	}
	if supplier.LeadTimeDays != 15 {
		t.Errorf("Expected lead time 15, got %d", supplier.LeadTimeDays)
	}

	testCases := []struct {
		name        string
		id          int64
		supplier    string
		leadTime    int
		expectError string
	}{
		{"zero id", 0, "Global Tech Parts", 5, "supplier id must be positive"},
		{"empty name", 1, "", 5, "supplier name cannot be empty"},
		{"zero lead time", 1, "Global Tech Parts", 0, "lead time must be positive, got 0"},
		{"negative lead time", 1, "Global Tech Parts", -3, "lead time must be positive, got -3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSupplier(tc.id, tc.supplier, "San Jose, CA", tc.leadTime)
			if err == nil {
				t.Fatalf("Expected error containing %q, got none", tc.expectError)
			}
			if !strings.Contains(err.Error(), tc.expectError) {
				t.Errorf("Expected error containing %q, got %q", tc.expectError, err.Error())
			}
		})
	}
}

func TestNewProductAndWarehouse_Validation(t *testing.T) {
	if _, err := NewProduct(1, "Microprocessor X1", "Electronics"); err != nil {
		t.Errorf("Expected valid product, got %v", err)
	}
	if _, err := NewProduct(1, "", "Electronics"); err == nil {
		t.Error("Expected error for empty product name, got none")
	}
	if _, err := NewWarehouse(1, "West Coast Hub", "Long Beach, CA"); err != nil {
		t.Errorf("Expected valid warehouse, got %v", err)
	}
	if _, err := NewWarehouse(-1, "West Coast Hub", "Long Beach, CA"); err == nil {
		t.Error("Expected error for negative warehouse id, got none")
	}
}
