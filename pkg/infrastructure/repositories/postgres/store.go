package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/vsinha/supplychain/pkg/domain/entities"
	"github.com/vsinha/supplychain/pkg/domain/repositories"
)

// PostgreSQL error codes surfaced as store errors
const (
	PgErrForeignKeyViolation = "23503" // foreign_key_violation
	PgErrUniqueViolation     = "23505" // unique_violation
	PgErrUndefinedTable      = "42P01" // undefined_table
)

const batchSize = 500

// Options configures the connection pool
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// StoreError wraps a database error with its SQLSTATE code
type StoreError struct {
	Op     string
	Code   string
	Detail string
	Err    error
}

func (e *StoreError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v (code %s)", e.Op, e.Err, e.Code)
}

func (e *StoreError) Unwrap() error { return e.Err }

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	storeErr := &StoreError{Op: op, Err: err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		storeErr.Code = pgErr.Code
		storeErr.Detail = pgErr.Detail
	}
	return storeErr
}

// Store is a relational entity store backed by PostgreSQL
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// Verify interface compliance
var (
	_ repositories.DatasetSource = (*Store)(nil)
	_ repositories.DatasetSink   = (*Store)(nil)
)

// Open connects to PostgreSQL and configures the pool
func Open(dsn string, opts Options, log *zap.Logger) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database dsn cannot be empty")
	}
	if log == nil {
		log = zap.NewNop()
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, wrap("connect to database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, wrap("get sql db", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	return NewStore(db, log), nil
}

// NewStore wraps an existing gorm connection
func NewStore(db *gorm.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: db, logger: log.Named("postgres")}
}

// resetTables drops the four tables and recreates them empty
func resetTables(db *gorm.DB) error {
	models := allModels()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return wrap("drop table", err)
		}
	}
	return wrap("migrate schema", db.AutoMigrate(models...))
}

// Save replaces all rows with the dataset in one transaction. PostgreSQL DDL
// is transactional, so a failed save leaves the previous tables intact.
func (s *Store) Save(ctx context.Context, ds *entities.Dataset) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := resetTables(tx); err != nil {
			return err
		}

		suppliers := make([]SupplierModel, 0, len(ds.Suppliers))
		for _, sup := range ds.Suppliers {
			suppliers = append(suppliers, toSupplierModel(sup))
		}
		if err := insert(tx, "insert suppliers", suppliers); err != nil {
			return err
		}

		products := make([]ProductModel, 0, len(ds.Products))
		for _, p := range ds.Products {
			products = append(products, toProductModel(p))
		}
		if err := insert(tx, "insert products", products); err != nil {
			return err
		}

		warehouses := make([]WarehouseModel, 0, len(ds.Warehouses))
		for _, w := range ds.Warehouses {
			warehouses = append(warehouses, toWarehouseModel(w))
		}
		if err := insert(tx, "insert warehouses", warehouses); err != nil {
			return err
		}

		shipments := make([]ShipmentModel, 0, len(ds.Shipments))
		for _, sh := range ds.Shipments {
			shipments = append(shipments, toShipmentModel(sh))
		}
		return insert(tx, "insert shipments", shipments)
	})
	if err != nil {
		return err
	}

	s.logger.Info("dataset saved",
		zap.Int("suppliers", len(ds.Suppliers)),
		zap.Int("products", len(ds.Products)),
		zap.Int("warehouses", len(ds.Warehouses)),
		zap.Int("shipments", len(ds.Shipments)))
	return nil
}

func insert[T any](tx *gorm.DB, op string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return wrap(op, tx.Omit(clause.Associations).CreateInBatches(rows, batchSize).Error)
}

// Load reads every table ordered by primary key
func (s *Store) Load(ctx context.Context) (*entities.Dataset, error) {
	db := s.db.WithContext(ctx)
	ds := &entities.Dataset{}

	var suppliers []SupplierModel
	if err := db.Order("supplier_id").Find(&suppliers).Error; err != nil {
		return nil, wrap("load suppliers", err)
	}
	for _, m := range suppliers {
		ds.Suppliers = append(ds.Suppliers, m.toEntity())
	}

	var products []ProductModel
	if err := db.Order("product_id").Find(&products).Error; err != nil {
		return nil, wrap("load products", err)
	}
	for _, m := range products {
		ds.Products = append(ds.Products, m.toEntity())
	}

	var warehouses []WarehouseModel
	if err := db.Order("warehouse_id").Find(&warehouses).Error; err != nil {
		return nil, wrap("load warehouses", err)
	}
	for _, m := range warehouses {
		ds.Warehouses = append(ds.Warehouses, m.toEntity())
	}

	var shipments []ShipmentModel
	if err := db.Order("shipment_id").Find(&shipments).Error; err != nil {
		return nil, wrap("load shipments", err)
	}
	for _, m := range shipments {
		ds.Shipments = append(ds.Shipments, m.toEntity())
	}

	s.logger.Debug("dataset loaded", zap.Int("shipments", len(ds.Shipments)))
	return ds, nil
}

// Close releases the connection pool
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return wrap("get sql db", err)
	}
	return sqlDB.Close()
}
