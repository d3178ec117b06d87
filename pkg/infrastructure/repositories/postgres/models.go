package postgres

import (
	"time"

	"github.com/vsinha/supplychain/pkg/domain/entities"
)

// SupplierModel is the suppliers table row
type SupplierModel struct {
	SupplierID   int64  `gorm:"column:supplier_id;primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Location     string `gorm:"size:100"`
	LeadTimeDays int    `gorm:"column:lead_time_days"`
}

func (SupplierModel) TableName() string { return "suppliers" }

// ProductModel is the products table row
type ProductModel struct {
	ProductID int64  `gorm:"column:product_id;primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Category  string `gorm:"size:50"`
}

func (ProductModel) TableName() string { return "products" }

// WarehouseModel is the warehouses table row
type WarehouseModel struct {
	WarehouseID int64  `gorm:"column:warehouse_id;primaryKey"`
	Name        string `gorm:"size:100;not null"`
	Location    string `gorm:"size:100"`
}

func (WarehouseModel) TableName() string { return "warehouses" }

// ShipmentModel is the shipments table row. A null delivery date means in transit.
type ShipmentModel struct {
	ShipmentID   int64      `gorm:"column:shipment_id;primaryKey"`
	ProductID    int64      `gorm:"column:product_id;index"`
	SupplierID   int64      `gorm:"column:supplier_id;index"`
	WarehouseID  int64      `gorm:"column:warehouse_id;index"`
	Quantity     int        `gorm:"not null"`
	OrderDate    time.Time  `gorm:"type:date;not null"`
	DeliveryDate *time.Time `gorm:"type:date"`

	Product   ProductModel   `gorm:"foreignKey:ProductID;references:ProductID"`
	Supplier  SupplierModel  `gorm:"foreignKey:SupplierID;references:SupplierID"`
	Warehouse WarehouseModel `gorm:"foreignKey:WarehouseID;references:WarehouseID"`
}

func (ShipmentModel) TableName() string { return "shipments" }

// allModels lists the tables in creation order
func allModels() []any {
	return []any{&SupplierModel{}, &ProductModel{}, &WarehouseModel{}, &ShipmentModel{}}
}

func toSupplierModel(s *entities.Supplier) SupplierModel {
	return SupplierModel{SupplierID: s.ID, Name: s.Name, Location: s.Location, LeadTimeDays: s.LeadTimeDays}
}

func (m SupplierModel) toEntity() *entities.Supplier {
	return &entities.Supplier{ID: m.SupplierID, Name: m.Name, Location: m.Location, LeadTimeDays: m.LeadTimeDays}
}

func toProductModel(p *entities.Product) ProductModel {
	return ProductModel{ProductID: p.ID, Name: p.Name, Category: p.Category}
}

func (m ProductModel) toEntity() *entities.Product {
	return &entities.Product{ID: m.ProductID, Name: m.Name, Category: m.Category}
}

func toWarehouseModel(w *entities.Warehouse) WarehouseModel {
	return WarehouseModel{WarehouseID: w.ID, Name: w.Name, Location: w.Location}
}

func (m WarehouseModel) toEntity() *entities.Warehouse {
	return &entities.Warehouse{ID: m.WarehouseID, Name: m.Name, Location: m.Location}
}

func toShipmentModel(s *entities.Shipment) ShipmentModel {
	m := ShipmentModel{
		ShipmentID:  s.ID,
		ProductID:   s.ProductID,
		SupplierID:  s.SupplierID,
		WarehouseID: s.WarehouseID,
		Quantity:    s.Quantity,
		OrderDate:   entities.CalendarDate(s.OrderDate),
	}
	if s.DeliveryDate != nil {
		d := entities.CalendarDate(*s.DeliveryDate)
		m.DeliveryDate = &d
	}
	return m
}

func (m ShipmentModel) toEntity() *entities.Shipment {
	s := &entities.Shipment{
		ID:          m.ShipmentID,
		ProductID:   m.ProductID,
		SupplierID:  m.SupplierID,
		WarehouseID: m.WarehouseID,
		Quantity:    m.Quantity,
		OrderDate:   entities.CalendarDate(m.OrderDate),
	}
	if m.DeliveryDate != nil {
		d := entities.CalendarDate(*m.DeliveryDate)
		s.DeliveryDate = &d
	}
	return s
}
