package memory

import (
	"context"
	"fmt"

	"github.com/vsinha/supplychain/pkg/domain/entities"
	"github.com/vsinha/supplychain/pkg/domain/repositories"
)

// Store groups the four in-memory repositories into one entity store
type Store struct {
	Suppliers  *SupplierRepository
	Products   *ProductRepository
	Warehouses *WarehouseRepository
	Shipments  *ShipmentRepository
}

// NewStore creates an empty in-memory entity store
func NewStore() *Store {
	return &Store{
		Suppliers:  NewSupplierRepository(0),
		Products:   NewProductRepository(0),
		Warehouses: NewWarehouseRepository(0),
		Shipments:  NewShipmentRepository(0),
	}
}

// NewStoreFromDataset creates a store holding the given dataset
func NewStoreFromDataset(ds *entities.Dataset) (*Store, error) {
	s := NewStore()
	if err := s.Save(context.Background(), ds); err != nil {
		return nil, err
	}
	return s, nil
}

// Verify interface compliance
var (
	_ repositories.DatasetSource = (*Store)(nil)
	_ repositories.DatasetSink   = (*Store)(nil)
)

// Save replaces the store contents with the dataset. A rejected dataset
// leaves the previous contents in place.
func (s *Store) Save(_ context.Context, ds *entities.Dataset) error {
	suppliers := NewSupplierRepository(len(ds.Suppliers))
	products := NewProductRepository(len(ds.Products))
	warehouses := NewWarehouseRepository(len(ds.Warehouses))
	shipments := NewShipmentRepository(len(ds.Shipments))

	if err := suppliers.LoadSuppliers(ds.Suppliers); err != nil {
		return fmt.Errorf("failed to load suppliers: %w", err)
	}
	if err := products.LoadProducts(ds.Products); err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	if err := warehouses.LoadWarehouses(ds.Warehouses); err != nil {
		return fmt.Errorf("failed to load warehouses: %w", err)
	}
	if err := shipments.LoadShipments(ds.Shipments); err != nil {
		return fmt.Errorf("failed to load shipments: %w", err)
	}

	s.Suppliers = suppliers
	s.Products = products
	s.Warehouses = warehouses
	s.Shipments = shipments
	return nil
}

// Load returns a snapshot of the store contents
func (s *Store) Load(ctx context.Context) (*entities.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	suppliers, _ := s.Suppliers.GetAllSuppliers()
	products, _ := s.Products.GetAllProducts()
	warehouses, _ := s.Warehouses.GetAllWarehouses()
	shipments, _ := s.Shipments.GetAllShipments()
	return &entities.Dataset{
		Suppliers:  suppliers,
		Products:   products,
		Warehouses: warehouses,
		Shipments:  shipments,
	}, nil
}

// Close is a no-op for the in-memory store
func (s *Store) Close() error {
	return nil
}
