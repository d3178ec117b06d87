package entities

// Dataset is an immutable snapshot of the four entity tables in insertion order
type Dataset struct {
	Suppliers  []*Supplier
	Products   []*Product
	Warehouses []*Warehouse
	Shipments  []*Shipment
}

// Counts returns the number of rows in each table
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		"Suppliers":  len(d.Suppliers),
		"Products":   len(d.Products),
		"Warehouses": len(d.Warehouses),
		"Shipments":  len(d.Shipments),
	}
}

