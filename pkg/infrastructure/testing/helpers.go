package testing

import (
	"time"

	"github.com/vsinha/supplychain/pkg/domain/entities"
)

// Date returns a UTC calendar date
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DatePtr returns a pointer to a UTC calendar date
func DatePtr(year int, month time.Month, day int) *time.Time {
	d := Date(year, month, day)
	return &d
}

// BuildSupplyChainTestData builds a small deterministic dataset covering
// late, early, on-time and in-transit shipments across the demo catalog
func BuildSupplyChainTestData() *entities.Dataset {
	ds := &entities.Dataset{
		Suppliers: []*entities.Supplier{
			{ID: 1, Name: "Global Tech Parts", Location: "San Jose, CA", LeadTimeDays: 5},
			{ID: 2, Name: "Precision Manufacturing", Location: "Detroit, MI", LeadTimeDays: 10},
			{ID: 3, Name: "Asia Logistics Hub", Location: "Singapore", LeadTimeDays: 15},
			{ID: 4, Name: "Euro Component Co", Location: "Berlin, Germany", LeadTimeDays: 12},
			{ID: 5, Name: "Coastal Supplies", Location: "Seattle, WA", LeadTimeDays: 7},
		},
		Products: []*entities.Product{
			{ID: 1, Name: "Microprocessor X1", Category: "Electronics"},
			{ID: 2, Name: "Industrial Grade Steel", Category: "Raw Materials"},
			{ID: 3, Name: "LCD Display Panel", Category: "Electronics"},
			{ID: 4, Name: "Aluminum Casing", Category: "Components"},
		},
		Warehouses: []*entities.Warehouse{
			{ID: 1, Name: "East Coast Distribution Center", Location: "Newark, NJ"},
			{ID: 2, Name: "West Coast Hub", Location: "Long Beach, CA"},
			{ID: 3, Name: "Central Logistics Base", Location: "Memphis, TN"},
		},
	}

	type row struct {
		supplier, product, warehouse int64
		order                        time.Time
		actualDays                   int // -1 means in transit
	}
	rows := []row{
		{3, 3, 2, Date(2023, 1, 1), 19},  // Asia +4
		{1, 1, 1, Date(2023, 1, 3), 5},   // Global 0
		{2, 2, 3, Date(2023, 1, 5), 22},  // Precision +12
		{4, 4, 1, Date(2023, 1, 5), 11},  // Euro -1
		{5, 1, 2, Date(2023, 1, 8), 15},  // Coastal +8
		{1, 2, 3, Date(2023, 1, 9), 4},   // Global -1
		{3, 4, 1, Date(2023, 1, 12), 30}, // Asia +15
		{2, 3, 2, Date(2023, 1, 15), 10}, // Precision 0
		{5, 4, 3, Date(2023, 1, 20), 6},  // Coastal -1
		{4, 1, 1, Date(2023, 1, 22), 20}, // Euro +8
		{1, 3, 2, Date(2023, 2, 1), 7},   // Global +2
		{2, 1, 3, Date(2023, 2, 2), -1},  // in transit
	}

	for i, r := range rows {
		s := &entities.Shipment{
			ID:          int64(i + 1),
			SupplierID:  r.supplier,
			ProductID:   r.product,
			WarehouseID: r.warehouse,
			Quantity:    100 * (i + 1),
			OrderDate:   r.order,
		}
		if r.actualDays >= 0 {
			delivery := r.order.AddDate(0, 0, r.actualDays)
			s.DeliveryDate = &delivery
		}
		ds.Shipments = append(ds.Shipments, s)
	}

	return ds
}

// BuildSingleShipmentData builds the lead time example: one shipment from a
// 15-day supplier ordered 2023-01-01 and delivered 2023-01-20
func BuildSingleShipmentData() *entities.Dataset {
	return &entities.Dataset{
		Suppliers:  []*entities.Supplier{{ID: 1, Name: "Asia Logistics Hub", Location: "Singapore", LeadTimeDays: 15}},
		Products:   []*entities.Product{{ID: 1, Name: "LCD Display Panel", Category: "Electronics"}},
		Warehouses: []*entities.Warehouse{{ID: 1, Name: "West Coast Hub", Location: "Long Beach, CA"}},
		Shipments: []*entities.Shipment{{
			ID:           1,
			SupplierID:   1,
			ProductID:    1,
			WarehouseID:  1,
			Quantity:     500,
			OrderDate:    Date(2023, 1, 1),
			DeliveryDate: DatePtr(2023, 1, 20),
		}},
	}
}
