package memory

import (
	"github.com/vsinha/supplychain/pkg/domain/entities"
	"github.com/vsinha/supplychain/pkg/domain/repositories"
)

// ShipmentRepository provides in-memory shipments storage
type ShipmentRepository struct {
	rows *table[entities.Shipment]
}

// NewShipmentRepository creates a new in-memory shipment repository
func NewShipmentRepository(expectedShipments int) *ShipmentRepository {
	return &ShipmentRepository{
		rows: newTable("shipment", expectedShipments, func(v *entities.Shipment) int64 { return v.ID }),
	}
}

// Verify interface compliance
var _ repositories.ShipmentRepository = (*ShipmentRepository)(nil)

// LoadShipments loads shipments into the repository, rejecting the batch on duplicate ids
func (r *ShipmentRepository) LoadShipments(shipments []*entities.Shipment) error {
	return r.rows.load(shipments)
}

// GetShipment returns the shipment with the given id
func (r *ShipmentRepository) GetShipment(id int64) (*entities.Shipment, error) {
	return r.rows.get(id)
}

// GetAllShipments returns all shipments in insertion order
func (r *ShipmentRepository) GetAllShipments() ([]*entities.Shipment, error) {
	return r.rows.all(), nil
}
