package entities

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used in files and queries
const DateLayout = "2006-01-02"

// Shipment represents one delivery from a supplier of a product to a warehouse.
// A nil DeliveryDate means the shipment is still in transit.
type Shipment struct {
	ID           int64
	SupplierID   int64
	ProductID    int64
	WarehouseID  int64
	Quantity     int
	OrderDate    time.Time
	DeliveryDate *time.Time
}

// NewShipment creates a validated Shipment. Delivery before order is accepted
// here so the delay deriver can report it.
func NewShipment(
	id, supplierID, productID, warehouseID int64,
	quantity int,
	orderDate time.Time,
	deliveryDate *time.Time,
) (*Shipment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("shipment id must be positive, got %d", id)
	}
	if supplierID <= 0 || productID <= 0 || warehouseID <= 0 {
		return nil, fmt.Errorf(
			"shipment %d: references must be positive (supplier %d, product %d, warehouse %d)",
			id, supplierID, productID, warehouseID,
		)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if orderDate.IsZero() {
		return nil, fmt.Errorf("shipment %d: order date cannot be empty", id)
	}

	s := &Shipment{
		ID:          id,
		SupplierID:  supplierID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
		OrderDate:   CalendarDate(orderDate),
	}
	if deliveryDate != nil {
		d := CalendarDate(*deliveryDate)
		s.DeliveryDate = &d
	}
	return s, nil
}

// InTransit reports whether the shipment has not been delivered yet
func (s *Shipment) InTransit() bool {
	return s.DeliveryDate == nil
}

// CalendarDate drops the time of day, keeping the date as seen in t's location
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from start to end
func DaysBetween(start, end time.Time) int {
	return int(CalendarDate(end).Sub(CalendarDate(start)).Hours() / 24)
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}
