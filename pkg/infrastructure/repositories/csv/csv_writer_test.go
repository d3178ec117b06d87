package csv

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	fixtures "github.com/vsinha/supplychain/pkg/infrastructure/testing"
)

func TestStore_SaveThenLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dataset")
	want := fixtures.BuildSupplyChainTestData()

	store := NewStore(dir)
	defer store.Close()

	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("Failed to save dataset: %v", err)
	}

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Failed to load dataset: %v", err)
	}

	if !reflect.DeepEqual(got.Counts(), want.Counts()) {
		t.Fatalf("Expected counts %v, got %v", want.Counts(), got.Counts())
	}
	if !reflect.DeepEqual(got.Suppliers, want.Suppliers) {
		t.Errorf("Suppliers differ after reload")
	}
	for i, s := range want.Shipments {
		g := got.Shipments[i]
		if g.ID != s.ID || g.SupplierID != s.SupplierID || g.ProductID != s.ProductID || g.WarehouseID != s.WarehouseID {
			t.Errorf("Shipment %d references differ: %+v vs %+v", s.ID, g, s)
		}
		if !g.OrderDate.Equal(s.OrderDate) {
			t.Errorf("Shipment %d order date differs", s.ID)
		}
		if s.InTransit() != g.InTransit() {
			t.Errorf("Shipment %d in-transit state differs", s.ID)
		}
	}
}

func TestWriter_ShipmentColumns(t *testing.T) {
	dir := t.TempDir()
	if err := NewWriter().WriteDataset(dir, fixtures.BuildSingleShipmentData()); err != nil {
		t.Fatalf("Failed to write dataset: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ShipmentsFile))
	if err != nil {
		t.Fatalf("Failed to read shipments: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != strings.Join(shipmentHeader, ",") {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if lines[1] != "1,1,1,1,500,2023-01-01,2023-01-20" {
		t.Errorf("Unexpected shipment row: %s", lines[1])
	}
}
