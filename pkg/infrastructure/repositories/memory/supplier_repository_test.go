package memory

import (
	"strings"
	"testing"

	"github.com/vsinha/supplychain/pkg/domain/entities"
)

func TestSupplierRepository_LoadSuppliers(t *testing.T) {
	repo := NewSupplierRepository(10)

	supplier := &entities.Supplier{
		ID:           3,
		Name:         "Asia Logistics Hub",
		Location:     "Singapore",
		LeadTimeDays: 15,
	}

	if err := repo.LoadSuppliers([]*entities.Supplier{supplier}); err != nil {
		t.Fatalf("Failed to load supplier: %v", err)
	}

	all, err := repo.GetAllSuppliers()
	if err != nil {
		t.Fatalf("Failed to get suppliers: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 supplier, got %d", len(all))
	}

	if all[0].Name != supplier.Name {
		t.Errorf("Expected name %s, got %s", supplier.Name, all[0].Name)
	}

	if all[0].LeadTimeDays != supplier.LeadTimeDays {
		t.Errorf("Expected lead time %d, got %d", supplier.LeadTimeDays, all[0].LeadTimeDays)
	}
}

func TestSupplierRepository_LoadSuppliers_DuplicateOfExisting(t *testing.T) {
	repo := NewSupplierRepository(10)

	first := &entities.Supplier{ID: 1, Name: "Global Tech Parts", Location: "San Jose, CA", LeadTimeDays: 5}
	if err := repo.LoadSuppliers([]*entities.Supplier{first}); err != nil {
		t.Fatalf("Failed to load supplier first time: %v", err)
	}

	// Same id again - should fail
	duplicate := &entities.Supplier{ID: 1, Name: "Coastal Supplies", Location: "Seattle, WA", LeadTimeDays: 7}
	err := repo.LoadSuppliers([]*entities.Supplier{duplicate})
	if err == nil {
		t.Fatal("Expected error when loading duplicate supplier id, got none")
	}

	if !strings.Contains(err.Error(), "duplicate supplier ids found: 1") {
		t.Errorf("Expected error message to name duplicate id 1, got: %v", err)
	}

	// Original supplier is unchanged
	all, _ := repo.GetAllSuppliers()
	if len(all) != 1 || all[0].Name != "Global Tech Parts" {
		t.Errorf("Expected only the original 'Global Tech Parts', got %d suppliers", len(all))
	}
}

func TestSupplierRepository_LoadSuppliers_WithDuplicates(t *testing.T) {
	repo := NewSupplierRepository(10)

	suppliers := []*entities.Supplier{
		{ID: 1, Name: "Global Tech Parts", LeadTimeDays: 5},
		{ID: 2, Name: "Precision Manufacturing", LeadTimeDays: 10},
		{ID: 1, Name: "Global Tech Parts Duplicate", LeadTimeDays: 6},
	}

	err := repo.LoadSuppliers(suppliers)
	if err == nil {
		t.Fatal("Expected error when loading suppliers with duplicates, got none")
	}

	if !strings.Contains(err.Error(), "duplicate supplier ids found: 1") {
		t.Errorf("Expected error message to name duplicate id 1, got: %v", err)
	}

	// Nothing from a rejected batch is kept
	all, _ := repo.GetAllSuppliers()
	if len(all) != 0 {
		t.Errorf("Expected rejected batch to leave repository empty, got %d suppliers", len(all))
	}
}

func TestSupplierRepository_GetAllSuppliers_InsertionOrder(t *testing.T) {
	repo := NewSupplierRepository(3)

	err := repo.LoadSuppliers([]*entities.Supplier{
		{ID: 5, Name: "Coastal Supplies", LeadTimeDays: 7},
		{ID: 2, Name: "Precision Manufacturing", LeadTimeDays: 10},
		{ID: 9, Name: "Mountain Raw Materials", LeadTimeDays: 14},
	})
	if err != nil {
		t.Fatalf("Failed to load suppliers: %v", err)
	}

	all, err := repo.GetAllSuppliers()
	if err != nil {
		t.Fatalf("Failed to get suppliers: %v", err)
	}

	expected := []int64{5, 2, 9}
	if len(all) != len(expected) {
		t.Fatalf("Expected %d suppliers, got %d", len(expected), len(all))
	}
	for i, id := range expected {
		if all[i].ID != id {
			t.Errorf("Position %d: expected id %d, got %d", i, id, all[i].ID)
		}
	}
}
