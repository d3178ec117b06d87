package commands

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/vsinha/supplychain/pkg/infrastructure/config"
)

// SeedConfig holds configuration for the seed command
type SeedConfig struct {
	Settings *config.Config
	Logger   *zap.Logger
	Target   string // Store kind to write: postgres, kv or csv
	Verbose  bool
	Out      io.Writer
}

// SeedCommand copies the configured source dataset into a persistent store,
// replacing whatever the store held before
type SeedCommand struct {
	config SeedConfig
	out    io.Writer
}

// NewSeedCommand creates a new seed command
func NewSeedCommand(config SeedConfig) *SeedCommand {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &SeedCommand{config: config, out: stdout(config.Out)}
}

// Execute runs the seed command
func (c *SeedCommand) Execute(ctx context.Context) error {
	settings := c.config.Settings
	if c.config.Target == settings.Source.Kind {
		return fmt.Errorf("seed source and target cannot both be %s", c.config.Target)
	}

	if c.config.Verbose {
		fmt.Fprintf(c.out, "📂 Loading dataset from %s source...\n", settings.Source.Kind)
	}
	ds, err := loadDataset(ctx, settings, c.config.Logger)
	if err != nil {
		return err
	}
	if err := validateDataset(ds, c.config.Verbose, c.out); err != nil {
		return err
	}

	sink, err := openSink(c.config.Target, settings, c.config.Logger)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", c.config.Target, err)
	}
	defer closeQuietly(sink, c.config.Logger)

	if c.config.Verbose {
		fmt.Fprintf(c.out, "💾 Writing dataset to %s store...\n", c.config.Target)
	}
	if err := sink.Save(ctx, ds); err != nil {
		return fmt.Errorf("failed to seed %s store: %w", c.config.Target, err)
	}

	c.config.Logger.Info("store seeded",
		zap.String("source", settings.Source.Kind),
		zap.String("target", c.config.Target),
		zap.Int("shipments", len(ds.Shipments)))

	fmt.Fprintf(c.out, "✅ Seeded %s store:\n", c.config.Target)
	printCounts(c.out, ds)
	return nil
}
