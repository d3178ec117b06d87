package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vsinha/supplychain/pkg/domain/entities"
)

const (
	// PresetFull is the 10 supplier, 150 shipment dataset
	PresetFull = "full"
	// PresetDemo is the smaller 5 supplier, 50 shipment dataset
	PresetDemo = "demo"
)

// DayRange is an inclusive range of day offsets
type DayRange struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

func (r DayRange) pick(rnd *rand.Rand) int {
	return r.Min + rnd.Intn(r.Max-r.Min+1)
}

// Config holds configuration for dataset generation
type Config struct {
	Seed   int64  `mapstructure:"seed"`   // Random seed, 0 means time-based
	Preset string `mapstructure:"preset"` // Catalog preset: full or demo

	Suppliers  int `mapstructure:"suppliers"`
	Products   int `mapstructure:"products"`
	Warehouses int `mapstructure:"warehouses"`
	Shipments  int `mapstructure:"shipments"`

	StartDate   time.Time `mapstructure:"start_date"`
	OrderWindow int       `mapstructure:"order_window"` // Days after start an order may be placed
	MinQuantity int       `mapstructure:"min_quantity"`
	MaxQuantity int       `mapstructure:"max_quantity"`

	DelayProbability     float64  `mapstructure:"delay_probability"`
	DelayDayRange        DayRange `mapstructure:"delay_day_range"`
	EarlyDayRange        DayRange `mapstructure:"early_day_range"`
	MinActualDays        int      `mapstructure:"min_actual_days"`
	InTransitProbability float64  `mapstructure:"in_transit_probability"`
}

// DefaultConfig returns the configuration for a named preset
func DefaultConfig(preset string) (Config, error) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	switch preset {
	case PresetFull, "":
		return Config{
			Preset:           PresetFull,
			Suppliers:        10,
			Products:         10,
			Warehouses:       5,
			Shipments:        150,
			StartDate:        start,
			OrderWindow:      365,
			MinQuantity:      100,
			MaxQuantity:      5000,
			DelayProbability: 0.3,
			DelayDayRange:    DayRange{Min: 5, Max: 30},
			EarlyDayRange:    DayRange{Min: -2, Max: 3},
			MinActualDays:    1,
		}, nil
	case PresetDemo:
		return Config{
			Preset:           PresetDemo,
			Suppliers:        5,
			Products:         5,
			Warehouses:       3,
			Shipments:        50,
			StartDate:        start,
			OrderWindow:      180,
			MinQuantity:      100,
			MaxQuantity:      2000,
			DelayProbability: 0.3,
			DelayDayRange:    DayRange{Min: 5, Max: 15},
			EarlyDayRange:    DayRange{Min: -1, Max: 2},
			MinActualDays:    1,
		}, nil
	default:
		return Config{}, fmt.Errorf("unknown preset: %s (supported: %s, %s)", preset, PresetFull, PresetDemo)
	}
}

// Validate checks that counts, ranges and probabilities are usable
func (c Config) Validate() error {
	if c.Suppliers < 1 || c.Suppliers > len(supplierCatalog) {
		return fmt.Errorf("suppliers must be between 1 and %d, got %d", len(supplierCatalog), c.Suppliers)
	}
	if c.Products < 1 || c.Products > len(productCatalog) {
		return fmt.Errorf("products must be between 1 and %d, got %d", len(productCatalog), c.Products)
	}
	if c.Warehouses < 1 || c.Warehouses > len(warehouseCatalog) {
		return fmt.Errorf("warehouses must be between 1 and %d, got %d", len(warehouseCatalog), c.Warehouses)
	}
	if c.Shipments < 0 {
		return fmt.Errorf("shipments cannot be negative, got %d", c.Shipments)
	}
	if c.StartDate.IsZero() {
		return fmt.Errorf("start date cannot be empty")
	}
	if c.OrderWindow < 0 {
		return fmt.Errorf("order window cannot be negative, got %d", c.OrderWindow)
	}
	if c.MinQuantity < 1 || c.MaxQuantity < c.MinQuantity {
		return fmt.Errorf("invalid quantity range [%d, %d]", c.MinQuantity, c.MaxQuantity)
	}
	if c.DelayProbability < 0 || c.DelayProbability > 1 {
		return fmt.Errorf("delay probability must be in [0, 1], got %g", c.DelayProbability)
	}
	if c.InTransitProbability < 0 || c.InTransitProbability > 1 {
		return fmt.Errorf("in-transit probability must be in [0, 1], got %g", c.InTransitProbability)
	}
	if c.DelayDayRange.Max < c.DelayDayRange.Min {
		return fmt.Errorf("invalid delay day range [%d, %d]", c.DelayDayRange.Min, c.DelayDayRange.Max)
	}
	if c.EarlyDayRange.Max < c.EarlyDayRange.Min {
		return fmt.Errorf("invalid early day range [%d, %d]", c.EarlyDayRange.Min, c.EarlyDayRange.Max)
	}
	if c.MinActualDays < 0 {
		return fmt.Errorf("min actual days cannot be negative, got %d", c.MinActualDays)
	}
	return nil
}

// Generator synthesizes supply chain datasets
type Generator struct {
	config Config
	rand   *rand.Rand
}

// New creates a generator. A zero seed uses the current time.
func New(config Config) *Generator {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
	}
}

// Generate builds the catalog and random shipments
func (g *Generator) Generate() (*entities.Dataset, error) {
	if err := g.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}

	ds := &entities.Dataset{}

	for i, seed := range supplierCatalog[:g.config.Suppliers] {
		s, err := entities.NewSupplier(int64(i+1), seed.name, seed.location, seed.leadTime)
		if err != nil {
			return nil, fmt.Errorf("failed to create supplier: %w", err)
		}
		ds.Suppliers = append(ds.Suppliers, s)
	}
	for i, seed := range productCatalog[:g.config.Products] {
		p, err := entities.NewProduct(int64(i+1), seed.name, seed.category)
		if err != nil {
			return nil, fmt.Errorf("failed to create product: %w", err)
		}
		ds.Products = append(ds.Products, p)
	}
	for i, seed := range warehouseCatalog[:g.config.Warehouses] {
		w, err := entities.NewWarehouse(int64(i+1), seed.name, seed.location)
		if err != nil {
			return nil, fmt.Errorf("failed to create warehouse: %w", err)
		}
		ds.Warehouses = append(ds.Warehouses, w)
	}

	start := entities.CalendarDate(g.config.StartDate)
	for i := 1; i <= g.config.Shipments; i++ {
		productID := int64(1 + g.rand.Intn(len(ds.Products)))
		supplierID := int64(1 + g.rand.Intn(len(ds.Suppliers)))
		warehouseID := int64(1 + g.rand.Intn(len(ds.Warehouses)))
		quantity := g.config.MinQuantity + g.rand.Intn(g.config.MaxQuantity-g.config.MinQuantity+1)

		order := start.AddDate(0, 0, g.rand.Intn(g.config.OrderWindow+1))

		leadTime := ds.Suppliers[supplierID-1].LeadTimeDays
		var actual int
		if g.rand.Float64() < g.config.DelayProbability {
			actual = leadTime + g.config.DelayDayRange.pick(g.rand)
		} else {
			actual = leadTime + g.config.EarlyDayRange.pick(g.rand)
		}
		actual = max(actual, g.config.MinActualDays)

		var delivery *time.Time
		if g.config.InTransitProbability == 0 || g.rand.Float64() >= g.config.InTransitProbability {
			d := order.AddDate(0, 0, actual)
			delivery = &d
		}

		shipment, err := entities.NewShipment(int64(i), supplierID, productID, warehouseID, quantity, order, delivery)
		if err != nil {
			return nil, fmt.Errorf("failed to create shipment %d: %w", i, err)
		}
		ds.Shipments = append(ds.Shipments, shipment)
	}

	return ds, nil
}
