package repositories

import "github.com/vsinha/supplychain/pkg/domain/entities"

// ShipmentRepository provides access to shipment data
type ShipmentRepository interface {
	GetShipment(id int64) (*entities.Shipment, error)
	GetAllShipments() ([]*entities.Shipment, error)
	LoadShipments(shipments []*entities.Shipment) error
}
