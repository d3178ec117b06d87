package services

import (
	"fmt"
	"iter"

	"github.com/vsinha/supplychain/pkg/domain/entities"
)

// DelayDeriver joins shipments with their supplier, product and warehouse and
// computes the per-shipment delay metric
type DelayDeriver struct {
	suppliers  map[int64]*entities.Supplier
	products   map[int64]*entities.Product
	warehouses map[int64]*entities.Warehouse
}

// NewDelayDeriver indexes the master data of a dataset by id
func NewDelayDeriver(ds *entities.Dataset) *DelayDeriver {
	d := &DelayDeriver{
		suppliers:  make(map[int64]*entities.Supplier, len(ds.Suppliers)),
		products:   make(map[int64]*entities.Product, len(ds.Products)),
		warehouses: make(map[int64]*entities.Warehouse, len(ds.Warehouses)),
	}
	for _, s := range ds.Suppliers {
		d.suppliers[s.ID] = s
	}
	for _, p := range ds.Products {
		d.products[p.ID] = p
	}
	for _, w := range ds.Warehouses {
		d.warehouses[w.ID] = w
	}
	return d
}

// resolve looks up the three entities a shipment references
func (d *DelayDeriver) resolve(s *entities.Shipment) (*entities.Supplier, *entities.Product, *entities.Warehouse, error) {
	supplier, ok := d.suppliers[s.SupplierID]
	if !ok {
		return nil, nil, nil, &entities.ReferentialIntegrityError{
			ShipmentID: s.ID, Entity: "supplier", RefID: s.SupplierID,
		}
	}
	product, ok := d.products[s.ProductID]
	if !ok {
		return nil, nil, nil, &entities.ReferentialIntegrityError{
			ShipmentID: s.ID, Entity: "product", RefID: s.ProductID,
		}
	}
	warehouse, ok := d.warehouses[s.WarehouseID]
	if !ok {
		return nil, nil, nil, &entities.ReferentialIntegrityError{
			ShipmentID: s.ID, Entity: "warehouse", RefID: s.WarehouseID,
		}
	}
	return supplier, product, warehouse, nil
}

// Derive computes the delay record of a single delivered shipment.
// Returns *entities.ReferentialIntegrityError for dangling references and
// *entities.DataIntegrityError when delivery precedes the order.
func (d *DelayDeriver) Derive(s *entities.Shipment) (entities.DelayRecord, error) {
	supplier, product, warehouse, err := d.resolve(s)
	if err != nil {
		return entities.DelayRecord{}, err
	}
	if s.InTransit() {
		return entities.DelayRecord{}, fmt.Errorf("shipment %d: %w", s.ID, entities.ErrInTransit)
	}

	order := entities.CalendarDate(s.OrderDate)
	delivery := entities.CalendarDate(*s.DeliveryDate)
	if delivery.Before(order) {
		return entities.DelayRecord{}, &entities.DataIntegrityError{
			ShipmentID: s.ID, OrderDate: order, DeliveryDate: delivery,
		}
	}

	actual := entities.DaysBetween(order, delivery)
	return entities.DelayRecord{
		ShipmentID:       s.ID,
		ProductName:      product.Name,
		SupplierName:     supplier.Name,
		WarehouseName:    warehouse.Name,
		OrderDate:        order,
		DeliveryDate:     delivery,
		PromisedLeadTime: supplier.LeadTimeDays,
		ActualLeadTime:   actual,
		DelayDays:        actual - supplier.LeadTimeDays,
	}, nil
}

// Records yields one delay record per delivered shipment in dataset order.
// In-transit shipments are skipped. A failed derivation yields a zero record
// with the error; the consumer decides whether to continue.
func (d *DelayDeriver) Records(shipments []*entities.Shipment) iter.Seq2[entities.DelayRecord, error] {
	return func(yield func(entities.DelayRecord, error) bool) {
		for _, s := range shipments {
			if s.InTransit() {
				continue
			}
			if !yield(d.Derive(s)) {
				return
			}
		}
	}
}

// DeriveDelays is a shorthand for NewDelayDeriver(ds).Records(ds.Shipments)
func DeriveDelays(ds *entities.Dataset) iter.Seq2[entities.DelayRecord, error] {
	return NewDelayDeriver(ds).Records(ds.Shipments)
}
