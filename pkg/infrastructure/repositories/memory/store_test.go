package memory

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vsinha/supplychain/pkg/domain/entities"
)

func TestStore_SaveAndLoad(t *testing.T) {
	order := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	delivery := order.AddDate(0, 0, 19)

	ds := &entities.Dataset{
		Suppliers:  []*entities.Supplier{{ID: 1, Name: "Asia Logistics Hub", Location: "Singapore", LeadTimeDays: 15}},
		Products:   []*entities.Product{{ID: 1, Name: "LCD Display Panel", Category: "Electronics"}},
		Warehouses: []*entities.Warehouse{{ID: 1, Name: "West Coast Hub", Location: "Long Beach, CA"}},
		Shipments: []*entities.Shipment{
			{ID: 1, SupplierID: 1, ProductID: 1, WarehouseID: 1, Quantity: 250, OrderDate: order, DeliveryDate: &delivery},
			{ID: 2, SupplierID: 1, ProductID: 1, WarehouseID: 1, Quantity: 100, OrderDate: order},
		},
	}

	store, err := NewStoreFromDataset(ds)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Failed to load dataset: %v", err)
	}

	counts := loaded.Counts()
	if counts["Shipments"] != 2 || counts["Suppliers"] != 1 {
		t.Errorf("Unexpected counts: %v", counts)
	}

	shipment, err := store.Shipments.GetShipment(2)
	if err != nil {
		t.Fatalf("Failed to get shipment: %v", err)
	}
	if !shipment.InTransit() {
		t.Error("Expected shipment 2 to be in transit")
	}
}

func TestStore_SaveReplacesContents(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first := &entities.Dataset{Products: []*entities.Product{{ID: 1, Name: "Hydraulic Valve"}}}
	second := &entities.Dataset{Products: []*entities.Product{{ID: 2, Name: "High-Torque Motor"}}}

	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Failed to save first dataset: %v", err)
	}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Failed to save second dataset: %v", err)
	}

	products, _ := store.Products.GetAllProducts()
	if len(products) != 1 {
		t.Fatalf("Expected 1 product after replace, got %d", len(products))
	}
	if products[0].ID != 2 {
		t.Errorf("Expected product 2 to replace product 1, got id %d", products[0].ID)
	}
}

func TestStore_FailedSaveKeepsPreviousContents(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first := &entities.Dataset{
		Suppliers: []*entities.Supplier{{ID: 1, Name: "Global Tech Parts", LeadTimeDays: 5}},
		Products:  []*entities.Product{{ID: 1, Name: "Hydraulic Valve"}},
	}
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Failed to save first dataset: %v", err)
	}

	rejected := &entities.Dataset{
		Suppliers: []*entities.Supplier{
			{ID: 7, Name: "Coastal Supplies", LeadTimeDays: 7},
			{ID: 7, Name: "Coastal Supplies East", LeadTimeDays: 9},
		},
		Products: []*entities.Product{{ID: 2, Name: "High-Torque Motor"}},
	}
	err := store.Save(ctx, rejected)
	if err == nil {
		t.Fatal("Expected duplicate supplier ids to be rejected")
	}
	if !strings.Contains(err.Error(), "failed to load suppliers") {
		t.Errorf("Expected supplier load context in error, got: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Failed to load dataset: %v", err)
	}
	if len(loaded.Suppliers) != 1 || loaded.Suppliers[0].Name != "Global Tech Parts" {
		t.Errorf("Expected original supplier to survive, got %d suppliers", len(loaded.Suppliers))
	}
	if len(loaded.Products) != 1 || loaded.Products[0].ID != 1 {
		t.Errorf("Expected original product to survive, got %d products", len(loaded.Products))
	}
}

func TestStore_SaveRejectsDuplicateShipments(t *testing.T) {
	order := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	ds := &entities.Dataset{
		Shipments: []*entities.Shipment{
			{ID: 4, SupplierID: 1, ProductID: 1, WarehouseID: 1, Quantity: 1, OrderDate: order},
			{ID: 4, SupplierID: 1, ProductID: 1, WarehouseID: 1, Quantity: 2, OrderDate: order},
		},
	}

	_, err := NewStoreFromDataset(ds)
	if err == nil {
		t.Fatal("Expected duplicate shipment ids to be rejected")
	}
	if !strings.Contains(err.Error(), "failed to load shipments") {
		t.Errorf("Expected shipment load context in error, got: %v", err)
	}
}

func TestStore_LoadHonoursCancelledContext(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Load(ctx); err == nil {
		t.Error("Expected error for cancelled context, got none")
	}
}
