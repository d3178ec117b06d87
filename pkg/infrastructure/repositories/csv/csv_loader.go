package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vsinha/supplychain/pkg/domain/entities"
)

// File names of a CSV dataset directory
const (
	SuppliersFile  = "suppliers.csv"
	ProductsFile   = "products.csv"
	WarehousesFile = "warehouses.csv"
	ShipmentsFile  = "shipments.csv"
)

var (
	supplierHeader  = []string{"supplier_id", "name", "location", "lead_time_days"}
	productHeader   = []string{"product_id", "name", "category"}
	warehouseHeader = []string{"warehouse_id", "name", "location"}
	shipmentHeader  = []string{"shipment_id", "product_id", "supplier_id", "warehouse_id", "quantity", "order_date", "delivery_date"}
)

// Loader handles loading supply chain data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadDataset loads all four tables from a directory
func (l *Loader) LoadDataset(ctx context.Context, dir string) (*entities.Dataset, error) {
	suppliers, err := l.LoadSuppliers(filepath.Join(dir, SuppliersFile))
	if err != nil {
		return nil, err
	}
	products, err := l.LoadProducts(filepath.Join(dir, ProductsFile))
	if err != nil {
		return nil, err
	}
	warehouses, err := l.LoadWarehouses(filepath.Join(dir, WarehousesFile))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	shipments, err := l.LoadShipments(filepath.Join(dir, ShipmentsFile))
	if err != nil {
		return nil, err
	}

	return &entities.Dataset{
		Suppliers:  suppliers,
		Products:   products,
		Warehouses: warehouses,
		Shipments:  shipments,
	}, nil
}

// LoadSuppliers loads suppliers from a CSV file
func (l *Loader) LoadSuppliers(filename string) ([]*entities.Supplier, error) {
	return loadTable(filename, "suppliers", supplierHeader, parseSupplier)
}

// LoadProducts loads products from a CSV file
func (l *Loader) LoadProducts(filename string) ([]*entities.Product, error) {
	return loadTable(filename, "products", productHeader, parseProduct)
}

// LoadWarehouses loads warehouses from a CSV file
func (l *Loader) LoadWarehouses(filename string) ([]*entities.Warehouse, error) {
	return loadTable(filename, "warehouses", warehouseHeader, parseWarehouse)
}

// LoadShipments loads shipments from a CSV file
func (l *Loader) LoadShipments(filename string) ([]*entities.Shipment, error) {
	return loadTable(filename, "shipments", shipmentHeader, parseShipment)
}

// loadTable reads a CSV file with a fixed header and parses each data row
func loadTable[T any](filename, kind string, expectedHeader []string, parse func([]string) (*T, error)) ([]*T, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("%s CSV must have a header row", kind)
	}

	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("%s CSV header mismatch. Expected: %v, Got: %v", kind, expectedHeader, header)
	}

	rows := make([]*T, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s CSV row %d: expected %d columns, got %d", kind, i+2, len(expectedHeader), len(record))
		}

		row, err := parse(record)
		if err != nil {
			return nil, fmt.Errorf("%s CSV row %d: %w", kind, i+2, err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// Helper functions for parsing CSV records

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		name := strings.TrimPrefix(actual[i], "\ufeff")
		if strings.ToLower(strings.TrimSpace(name)) != col {
			return false
		}
	}

	return true
}

func parseID(field, value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", field, value)
	}
	return id, nil
}

func parseSupplier(record []string) (*entities.Supplier, error) {
	id, err := parseID("supplier_id", record[0])
	if err != nil {
		return nil, err
	}

	leadTime, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, fmt.Errorf("invalid lead_time_days: %s", record[3])
	}

	return entities.NewSupplier(id, record[1], record[2], leadTime)
}

func parseProduct(record []string) (*entities.Product, error) {
	id, err := parseID("product_id", record[0])
	if err != nil {
		return nil, err
	}
	return entities.NewProduct(id, record[1], record[2])
}

func parseWarehouse(record []string) (*entities.Warehouse, error) {
	id, err := parseID("warehouse_id", record[0])
	if err != nil {
		return nil, err
	}
	return entities.NewWarehouse(id, record[1], record[2])
}

func parseShipment(record []string) (*entities.Shipment, error) {
	fields := []string{"shipment_id", "product_id", "supplier_id", "warehouse_id"}
	ids := make([]int64, len(fields))
	for i, field := range fields {
		id, err := parseID(field, record[i])
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(record[4]))
	if err != nil {
		return nil, fmt.Errorf("invalid quantity: %s", record[4])
	}

	orderDate, err := entities.ParseDate(strings.TrimSpace(record[5]))
	if err != nil {
		return nil, fmt.Errorf("invalid order_date format: %s (expected YYYY-MM-DD)", record[5])
	}

	var deliveryDate *time.Time
	if value := strings.TrimSpace(record[6]); value != "" {
		d, err := entities.ParseDate(value)
		if err != nil {
			return nil, fmt.Errorf("invalid delivery_date format: %s (expected YYYY-MM-DD)", record[6])
		}
		deliveryDate = &d
	}

	return entities.NewShipment(ids[0], ids[2], ids[1], ids[3], quantity, orderDate, deliveryDate)
}
