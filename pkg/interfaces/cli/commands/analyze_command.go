package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/vsinha/supplychain/pkg/application/services/analytics"
	"github.com/vsinha/supplychain/pkg/infrastructure/config"
	"github.com/vsinha/supplychain/pkg/interfaces/cli/output"
)

// AnalyzeConfig holds configuration for the analyze command
type AnalyzeConfig struct {
	Settings *config.Config
	Logger   *zap.Logger
	Verbose  bool
	Out      io.Writer // Report and progress output, os.Stdout when nil
}

// AnalyzeCommand loads a dataset, runs the delay reports and renders them
type AnalyzeCommand struct {
	config AnalyzeConfig
	out    io.Writer
}

// NewAnalyzeCommand creates a new analyze command with the given configuration
func NewAnalyzeCommand(config AnalyzeConfig) *AnalyzeCommand {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &AnalyzeCommand{config: config, out: stdout(config.Out)}
}

// Execute runs the analysis
func (c *AnalyzeCommand) Execute(ctx context.Context) error {
	settings := c.config.Settings

	if c.config.Verbose {
		c.printHeader()
		fmt.Fprintf(c.out, "📂 Loading dataset from %s source...\n", settings.Source.Kind)
	}

	ds, err := loadDataset(ctx, settings, c.config.Logger)
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Fprintf(c.out, "✅ Data loaded successfully:\n")
		printCounts(c.out, ds)
	}

	if err := validateDataset(ds, c.config.Verbose, c.out); err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "🔄 Computing delay reports...")
	}

	service := analytics.NewService(c.config.Logger)
	service.PerSupplierTrend = settings.Analysis.TrendBy == "supplier"

	start := time.Now()
	result, err := service.Run(ctx, ds)
	if err != nil {
		return fmt.Errorf("error running analysis: %w", err)
	}

	if c.config.Verbose {
		fmt.Fprintf(c.out, "✅ Analysis completed in %v\n", time.Since(start))
		if len(result.Warnings) > 0 {
			fmt.Fprintf(c.out, "⚠️  %d warning(s) recorded\n", len(result.Warnings))
		}
	}

	err = output.Generate(result, output.Config{
		Format:          settings.Output.Format,
		OutputDir:       settings.Output.Dir,
		Verbose:         c.config.Verbose,
		IncludeWarnings: settings.Analysis.IncludeWarnings,
		Writer:          c.out,
	})
	if err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Fprintln(c.out, "🏁 Delay analysis complete!")
	}
	return nil
}

func (c *AnalyzeCommand) printHeader() {
	settings := c.config.Settings
	fmt.Fprintf(c.out, "🚀 Supply Chain Delay Analytics\n")
	fmt.Fprintf(c.out, "Source: %s\n", settings.Source.Kind)
	switch settings.Source.Kind {
	case config.SourceCSV:
		fmt.Fprintf(c.out, "  CSV directory: %s\n", settings.Source.CSVDir)
	case config.SourceKV:
		fmt.Fprintf(c.out, "  KV path: %s\n", settings.KV.Path)
	case config.SourceGenerate:
		fmt.Fprintf(c.out, "  Preset: %s, seed: %d\n", settings.Generator.Preset, settings.Generator.Seed)
	}
	fmt.Fprintf(c.out, "Output format: %s\n", settings.Output.Format)
	if settings.Output.Dir != "" {
		fmt.Fprintf(c.out, "Output directory: %s\n", settings.Output.Dir)
	}
	fmt.Fprintf(c.out, "Trend series: %s\n", settings.Analysis.TrendBy)
	fmt.Fprintln(c.out)
}
