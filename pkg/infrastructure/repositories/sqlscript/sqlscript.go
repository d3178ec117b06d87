// Package sqlscript renders a dataset as a portable SQL seed script
package sqlscript

import (
	"fmt"
	"io"
	"strings"

	"github.com/vsinha/supplychain/pkg/domain/entities"
)

// Conventional file names for the schema and data scripts
const (
	SchemaFile = "01_schema.sql"
	DataFile   = "02_data.sql"
)

const schema = `DROP TABLE IF EXISTS Shipments;
DROP TABLE IF EXISTS Warehouses;
DROP TABLE IF EXISTS Products;
DROP TABLE IF EXISTS Suppliers;

CREATE TABLE Suppliers (
    supplier_id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    location VARCHAR(100),
    lead_time_days INT
);

CREATE TABLE Products (
    product_id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    category VARCHAR(50)
);

CREATE TABLE Warehouses (
    warehouse_id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    location VARCHAR(100)
);

CREATE TABLE Shipments (
    shipment_id SERIAL PRIMARY KEY,
    product_id INT REFERENCES Products(product_id),
    supplier_id INT REFERENCES Suppliers(supplier_id),
    warehouse_id INT REFERENCES Warehouses(warehouse_id),
    quantity INT NOT NULL,
    order_date DATE NOT NULL,
    delivery_date DATE
);
`

// WriteSchema writes the DDL that creates the four tables
func WriteSchema(w io.Writer) error {
	if _, err := io.WriteString(w, schema); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}

// WriteInserts writes one INSERT statement per row. Rows rely on
// auto-increment keys, so shipments reference the 1-based insertion
// position of their supplier, product and warehouse.
func WriteInserts(w io.Writer, ds *entities.Dataset) error {
	statements, err := Inserts(ds)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, strings.Join(statements, "\n")); err != nil {
		return fmt.Errorf("failed to write inserts: %w", err)
	}
	return nil
}

// Inserts returns the INSERT statements for a dataset in table order
func Inserts(ds *entities.Dataset) ([]string, error) {
	statements := make([]string, 0, len(ds.Suppliers)+len(ds.Products)+len(ds.Warehouses)+len(ds.Shipments))

	supplierPos := make(map[int64]int, len(ds.Suppliers))
	for i, s := range ds.Suppliers {
		supplierPos[s.ID] = i + 1
		statements = append(statements, fmt.Sprintf(
			"INSERT INTO Suppliers (name, location, lead_time_days) VALUES (%s, %s, %d);",
			quote(s.Name), quote(s.Location), s.LeadTimeDays))
	}

	productPos := make(map[int64]int, len(ds.Products))
	for i, p := range ds.Products {
		productPos[p.ID] = i + 1
		statements = append(statements, fmt.Sprintf(
			"INSERT INTO Products (name, category) VALUES (%s, %s);",
			quote(p.Name), quote(p.Category)))
	}

	warehousePos := make(map[int64]int, len(ds.Warehouses))
	for i, wh := range ds.Warehouses {
		warehousePos[wh.ID] = i + 1
		statements = append(statements, fmt.Sprintf(
			"INSERT INTO Warehouses (name, location) VALUES (%s, %s);",
			quote(wh.Name), quote(wh.Location)))
	}

	for _, s := range ds.Shipments {
		p, ok := productPos[s.ProductID]
		if !ok {
			return nil, &entities.ReferentialIntegrityError{ShipmentID: s.ID, Entity: "product", RefID: s.ProductID}
		}
		sup, ok := supplierPos[s.SupplierID]
		if !ok {
			return nil, &entities.ReferentialIntegrityError{ShipmentID: s.ID, Entity: "supplier", RefID: s.SupplierID}
		}
		wh, ok := warehousePos[s.WarehouseID]
		if !ok {
			return nil, &entities.ReferentialIntegrityError{ShipmentID: s.ID, Entity: "warehouse", RefID: s.WarehouseID}
		}

		delivery := "NULL"
		if s.DeliveryDate != nil {
			delivery = quote(s.DeliveryDate.Format(entities.DateLayout))
		}
		statements = append(statements, fmt.Sprintf(
			"INSERT INTO Shipments (product_id, supplier_id, warehouse_id, quantity, order_date, delivery_date) "+
				"VALUES (%d, %d, %d, %d, %s, %s);",
			p, sup, wh, s.Quantity, quote(s.OrderDate.Format(entities.DateLayout)), delivery))
	}

	return statements, nil
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
