package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/vsinha/supplychain/pkg/application/services/generator"
	"github.com/vsinha/supplychain/pkg/domain/entities"
	"github.com/vsinha/supplychain/pkg/domain/repositories"
	"github.com/vsinha/supplychain/pkg/domain/services"
	"github.com/vsinha/supplychain/pkg/infrastructure/config"
	"github.com/vsinha/supplychain/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/supplychain/pkg/infrastructure/repositories/kv"
	"github.com/vsinha/supplychain/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/supplychain/pkg/infrastructure/repositories/postgres"
)

// GeneratorConfig applies configured overrides on top of the preset defaults
func GeneratorConfig(g config.GeneratorConfig) (generator.Config, error) {
	cfg, err := generator.DefaultConfig(g.Preset)
	if err != nil {
		return generator.Config{}, err
	}
	cfg.Seed = g.Seed

	if g.StartDate != "" {
		start, err := entities.ParseDate(g.StartDate)
		if err != nil {
			return generator.Config{}, fmt.Errorf("invalid generator start date: %w", err)
		}
		cfg.StartDate = start
	}

	override(&cfg.Shipments, g.Shipments)
	override(&cfg.OrderWindow, g.OrderWindowDays)
	override(&cfg.MinQuantity, g.QuantityMin)
	override(&cfg.MaxQuantity, g.QuantityMax)
	override(&cfg.DelayProbability, g.DelayProbability)
	override(&cfg.DelayDayRange.Min, g.DelayMin)
	override(&cfg.DelayDayRange.Max, g.DelayMax)
	override(&cfg.EarlyDayRange.Min, g.EarlyMin)
	override(&cfg.EarlyDayRange.Max, g.EarlyMax)
	override(&cfg.MinActualDays, g.MinActualDays)
	override(&cfg.InTransitProbability, g.InTransitProbability)

	if err := cfg.Validate(); err != nil {
		return generator.Config{}, fmt.Errorf("invalid generator config: %w", err)
	}
	return cfg, nil
}

func override[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func generateDataset(g config.GeneratorConfig) (*entities.Dataset, error) {
	cfg, err := GeneratorConfig(g)
	if err != nil {
		return nil, err
	}
	ds, err := generator.New(cfg).Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}
	return ds, nil
}

// openSource returns the dataset source selected by source.kind
func openSource(settings *config.Config, logger *zap.Logger) (repositories.DatasetSource, error) {
	switch settings.Source.Kind {
	case config.SourceGenerate:
		ds, err := generateDataset(settings.Generator)
		if err != nil {
			return nil, err
		}
		store, err := memory.NewStoreFromDataset(ds)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.SourceCSV:
		return csv.NewStore(settings.Source.CSVDir), nil
	case config.SourcePostgres:
		store, err := openPostgres(settings, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.SourceKV:
		store, err := openKV(settings, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported source kind: %s", settings.Source.Kind)
	}
}

// openSink returns a persistent store that seed can write to
func openSink(kind string, settings *config.Config, logger *zap.Logger) (repositories.DatasetSink, error) {
	switch kind {
	case config.SourcePostgres:
		store, err := openPostgres(settings, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.SourceKV:
		store, err := openKV(settings, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.SourceCSV:
		return csv.NewStore(settings.Source.CSVDir), nil
	default:
		return nil, fmt.Errorf("unsupported seed target: %s (supported: postgres, kv, csv)", kind)
	}
}

func openPostgres(settings *config.Config, logger *zap.Logger) (*postgres.Store, error) {
	db := settings.Database
	return postgres.Open(db.DSN, postgres.Options{
		MaxOpenConns:    db.MaxOpenConns,
		MaxIdleConns:    db.MaxIdleConns,
		ConnMaxLifetime: db.ConnMaxLifetime,
	}, logger)
}

func openKV(settings *config.Config, logger *zap.Logger) (*kv.Store, error) {
	return kv.Open(kv.Options{Path: settings.KV.Path, InMemory: settings.KV.InMemory}, logger)
}

// loadDataset reads the configured source and closes it
func loadDataset(ctx context.Context, settings *config.Config, logger *zap.Logger) (*entities.Dataset, error) {
	source, err := openSource(settings, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s source: %w", settings.Source.Kind, err)
	}
	defer closeQuietly(source, logger)

	ds, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return ds, nil
}

func closeQuietly(c io.Closer, logger *zap.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn("failed to close store", zap.Error(err))
	}
}

func stdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

func printCounts(w io.Writer, ds *entities.Dataset) {
	counts := ds.Counts()
	for _, table := range []string{"Suppliers", "Products", "Warehouses", "Shipments"} {
		fmt.Fprintf(w, "  %s: %d\n", table, counts[table])
	}
}

// validateDataset fails on dangling references. Recoverable findings are
// printed when verbose.
func validateDataset(ds *entities.Dataset, verbose bool, w io.Writer) error {
	if verbose {
		fmt.Fprintln(w, "🔍 Validating dataset...")
	}

	validation := services.NewDatasetValidator().ValidateDataset(ds)
	if !validation.Valid() {
		return fmt.Errorf("dataset validation failed: %s", strings.Join(validation.Errors, "; "))
	}

	if verbose {
		for _, warning := range validation.Warnings {
			fmt.Fprintf(w, "⚠️  %s\n", warning)
		}
		if len(validation.Warnings) == 0 {
			fmt.Fprintln(w, "✅ Dataset validation passed")
		}
	}
	return nil
}
