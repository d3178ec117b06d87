package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/vsinha/supplychain/pkg/domain/entities"
	"github.com/vsinha/supplychain/pkg/infrastructure/config"
	"github.com/vsinha/supplychain/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/supplychain/pkg/infrastructure/repositories/sqlscript"
)

// GenerateConfig holds configuration for dataset generation
type GenerateConfig struct {
	Settings  *config.Config
	Logger    *zap.Logger
	OutputDir string    // Directory receiving the SQL scripts
	WriteCSV  bool      // Also write the four CSV tables
	Verbose   bool      // Verbose output
	Out       io.Writer // Progress output, os.Stdout when nil
}

// GenerateCommand synthesizes a dataset and writes it as SQL scripts
type GenerateCommand struct {
	config GenerateConfig
	out    io.Writer
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(config GenerateConfig) *GenerateCommand {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &GenerateCommand{config: config, out: stdout(config.Out)}
}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cmd.config.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}

	gen := cmd.config.Settings.Generator
	if cmd.config.Verbose {
		fmt.Fprintf(cmd.out, "🔧 Generating %s dataset\n", gen.Preset)
		fmt.Fprintf(cmd.out, "📁 Output directory: %s\n", cmd.config.OutputDir)
		fmt.Fprintf(cmd.out, "🎲 Random seed: %d\n", gen.Seed)
	}

	ds, err := generateDataset(gen)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cmd.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeFile(filepath.Join(cmd.config.OutputDir, sqlscript.SchemaFile), sqlscript.WriteSchema); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(cmd.config.OutputDir, sqlscript.DataFile), func(w io.Writer) error {
		return sqlscript.WriteInserts(w, ds)
	}); err != nil {
		return err
	}

	if cmd.config.WriteCSV {
		if err := csv.NewWriter().WriteDataset(cmd.config.OutputDir, ds); err != nil {
			return fmt.Errorf("failed to write CSV dataset: %w", err)
		}
	}

	cmd.config.Logger.Info("dataset generated",
		zap.String("dir", cmd.config.OutputDir),
		zap.Int("shipments", len(ds.Shipments)),
		zap.Bool("csv", cmd.config.WriteCSV))

	cmd.printSummary(ds)
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func (cmd *GenerateCommand) printSummary(ds *entities.Dataset) {
	if !cmd.config.Verbose {
		fmt.Fprintf(cmd.out, "Data generation complete. File saved to %s\n",
			filepath.Join(cmd.config.OutputDir, sqlscript.DataFile))
		return
	}

	fmt.Fprintf(cmd.out, "✅ Generated dataset:\n")
	printCounts(cmd.out, ds)
	fmt.Fprintf(cmd.out, "📄 Files:\n")
	fmt.Fprintf(cmd.out, "  %s\n", filepath.Join(cmd.config.OutputDir, sqlscript.SchemaFile))
	fmt.Fprintf(cmd.out, "  %s\n", filepath.Join(cmd.config.OutputDir, sqlscript.DataFile))
	if cmd.config.WriteCSV {
		for _, name := range []string{csv.SuppliersFile, csv.ProductsFile, csv.WarehousesFile, csv.ShipmentsFile} {
			fmt.Fprintf(cmd.out, "  %s\n", filepath.Join(cmd.config.OutputDir, name))
		}
	}
}
