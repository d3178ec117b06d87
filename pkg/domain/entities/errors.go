package entities

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyDataset marks an analysis run with no eligible delay records
var ErrEmptyDataset = errors.New("no delivered shipments to analyze")

// ErrInTransit marks a shipment that has no delivery date yet
var ErrInTransit = errors.New("shipment is in transit")

// ReferentialIntegrityError is returned when a shipment references an entity
// that does not exist
type ReferentialIntegrityError struct {
	ShipmentID int64
	Entity     string
	RefID      int64
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("shipment %d references unknown %s %d", e.ShipmentID, e.Entity, e.RefID)
}

// DataIntegrityError is returned when a shipment was delivered before it was ordered
type DataIntegrityError struct {
	ShipmentID   int64
	OrderDate    time.Time
	DeliveryDate time.Time
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("shipment %d delivered %s before order date %s",
		e.ShipmentID,
		e.DeliveryDate.Format(DateLayout),
		e.OrderDate.Format(DateLayout))
}
