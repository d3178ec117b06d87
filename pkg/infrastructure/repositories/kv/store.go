// Package kv persists dataset snapshots in an embedded badger database
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/vsinha/supplychain/pkg/domain/entities"
	"github.com/vsinha/supplychain/pkg/domain/repositories"
)

// Key prefixes, one per entity table
const (
	SupplierPrefix  = "supplier/"
	ProductPrefix   = "product/"
	WarehousePrefix = "warehouse/"
	ShipmentPrefix  = "shipment/"
)

// Options configures where badger keeps its files
type Options struct {
	Path     string
	InMemory bool
}

type supplierRecord struct {
	ID           int64  `json:"supplier_id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	LeadTimeDays int    `json:"lead_time_days"`
}

type productRecord struct {
	ID       int64  `json:"product_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type warehouseRecord struct {
	ID       int64  `json:"warehouse_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type shipmentRecord struct {
	ID           int64  `json:"shipment_id"`
	ProductID    int64  `json:"product_id"`
	SupplierID   int64  `json:"supplier_id"`
	WarehouseID  int64  `json:"warehouse_id"`
	Quantity     int    `json:"quantity"`
	OrderDate    string `json:"order_date"`
	DeliveryDate string `json:"delivery_date,omitempty"`
}

// Store is a snapshot entity store over badger
type Store struct {
	db     *badger.DB
	logger *zap.Logger
}

// Verify interface compliance
var (
	_ repositories.DatasetSource = (*Store)(nil)
	_ repositories.DatasetSink   = (*Store)(nil)
)

// Open opens or creates the badger database
func Open(opts Options, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if !opts.InMemory && opts.Path == "" {
		return nil, fmt.Errorf("kv path cannot be empty unless in_memory is set")
	}

	badgerOpts := badger.DefaultOptions(opts.Path).
		WithInMemory(opts.InMemory).
		WithLogger(badgerLogger{log.Named("badger").Sugar()})
	if opts.InMemory {
		badgerOpts = badgerOpts.WithDir("").WithValueDir("")
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open kv store: %w", err)
	}
	return &Store{db: db, logger: log.Named("kv")}, nil
}

// key builds a sortable key so iteration follows id order
func key(prefix string, id int64) []byte {
	return []byte(fmt.Sprintf("%s%020d", prefix, id))
}

// Save replaces previous contents in a single transaction, so a rejected
// dataset leaves the last snapshot readable
func (s *Store) Save(ctx context.Context, ds *entities.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		for _, prefix := range []string{SupplierPrefix, ProductPrefix, WarehousePrefix, ShipmentPrefix} {
			if err := deletePrefix(txn, prefix); err != nil {
				return err
			}
		}

		written := make(map[string]bool)
		put := func(k []byte, v any) error {
			if written[string(k)] {
				return fmt.Errorf("duplicate key %s", k)
			}
			written[string(k)] = true
			data, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", k, err)
			}
			if err := txn.Set(k, data); err != nil {
				return fmt.Errorf("failed to write %s: %w", k, err)
			}
			return nil
		}

		for _, sup := range ds.Suppliers {
			rec := supplierRecord{ID: sup.ID, Name: sup.Name, Location: sup.Location, LeadTimeDays: sup.LeadTimeDays}
			if err := put(key(SupplierPrefix, sup.ID), rec); err != nil {
				return err
			}
		}
		for _, p := range ds.Products {
			rec := productRecord{ID: p.ID, Name: p.Name, Category: p.Category}
			if err := put(key(ProductPrefix, p.ID), rec); err != nil {
				return err
			}
		}
		for _, w := range ds.Warehouses {
			rec := warehouseRecord{ID: w.ID, Name: w.Name, Location: w.Location}
			if err := put(key(WarehousePrefix, w.ID), rec); err != nil {
				return err
			}
		}
		for _, sh := range ds.Shipments {
			rec := shipmentRecord{
				ID:          sh.ID,
				ProductID:   sh.ProductID,
				SupplierID:  sh.SupplierID,
				WarehouseID: sh.WarehouseID,
				Quantity:    sh.Quantity,
				OrderDate:   sh.OrderDate.Format(entities.DateLayout),
			}
			if sh.DeliveryDate != nil {
				rec.DeliveryDate = sh.DeliveryDate.Format(entities.DateLayout)
			}
			if err := put(key(ShipmentPrefix, sh.ID), rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save kv snapshot: %w", err)
	}

	s.logger.Info("dataset saved", zap.Int("shipments", len(ds.Shipments)))
	return nil
}

// deletePrefix deletes every key under prefix within txn
func deletePrefix(txn *badger.Txn, prefix string) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	opts.PrefetchValues = false

	it := txn.NewIterator(opts)
	var keys [][]byte
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, k := range keys {
		if err := txn.Delete(k); err != nil {
			return fmt.Errorf("failed to delete %s: %w", k, err)
		}
	}
	return nil
}

// scan decodes every value under prefix in key order
func scan(txn *badger.Txn, prefix string, decode func([]byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)

	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		item := it.Item()
		if err := item.Value(decode); err != nil {
			return fmt.Errorf("failed to decode %s: %w", item.Key(), err)
		}
	}
	return nil
}

// Load reads the snapshot back in id order
func (s *Store) Load(ctx context.Context) (*entities.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds := &entities.Dataset{}
	err := s.db.View(func(txn *badger.Txn) error {
		if err := scan(txn, SupplierPrefix, func(v []byte) error {
			var rec supplierRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			ds.Suppliers = append(ds.Suppliers, &entities.Supplier{
				ID: rec.ID, Name: rec.Name, Location: rec.Location, LeadTimeDays: rec.LeadTimeDays,
			})
			return nil
		}); err != nil {
			return err
		}

		if err := scan(txn, ProductPrefix, func(v []byte) error {
			var rec productRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			ds.Products = append(ds.Products, &entities.Product{ID: rec.ID, Name: rec.Name, Category: rec.Category})
			return nil
		}); err != nil {
			return err
		}

		if err := scan(txn, WarehousePrefix, func(v []byte) error {
			var rec warehouseRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			ds.Warehouses = append(ds.Warehouses, &entities.Warehouse{ID: rec.ID, Name: rec.Name, Location: rec.Location})
			return nil
		}); err != nil {
			return err
		}

		return scan(txn, ShipmentPrefix, func(v []byte) error {
			var rec shipmentRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			shipment, err := rec.toEntity()
			if err != nil {
				return err
			}
			ds.Shipments = append(ds.Shipments, shipment)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load kv snapshot: %w", err)
	}
	return ds, nil
}

func (r shipmentRecord) toEntity() (*entities.Shipment, error) {
	order, err := entities.ParseDate(r.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("invalid order_date %q: %w", r.OrderDate, err)
	}
	var delivery *time.Time
	if r.DeliveryDate != "" {
		d, err := entities.ParseDate(r.DeliveryDate)
		if err != nil {
			return nil, fmt.Errorf("invalid delivery_date %q: %w", r.DeliveryDate, err)
		}
		delivery = &d
	}
	return &entities.Shipment{
		ID:           r.ID,
		ProductID:    r.ProductID,
		SupplierID:   r.SupplierID,
		WarehouseID:  r.WarehouseID,
		Quantity:     r.Quantity,
		OrderDate:    order,
		DeliveryDate: delivery,
	}, nil
}

// Close closes the badger database
func (s *Store) Close() error {
	return s.db.Close()
}

// badgerLogger routes badger's internal logging through zap
type badgerLogger struct {
	s *zap.SugaredLogger
}

func (l badgerLogger) Errorf(f string, v ...interface{})   { l.s.Errorf(f, v...) }
func (l badgerLogger) Warningf(f string, v ...interface{}) { l.s.Warnf(f, v...) }
func (l badgerLogger) Infof(f string, v ...interface{})    { l.s.Debugf(f, v...) }
func (l badgerLogger) Debugf(f string, v ...interface{})   { l.s.Debugf(f, v...) }
