package commands

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/vsinha/supplychain/pkg/application/services/analytics"
	"github.com/vsinha/supplychain/pkg/infrastructure/config"
	"github.com/vsinha/supplychain/pkg/interfaces/api"
)

// ServeConfig holds configuration for the serve command
type ServeConfig struct {
	Settings *config.Config
	Logger   *zap.Logger
	Verbose  bool
	Out      io.Writer
}

// ServeCommand analyzes a dataset once and serves the results until the
// context is cancelled
type ServeCommand struct {
	config ServeConfig
	out    io.Writer
}

// NewServeCommand creates a new serve command
func NewServeCommand(config ServeConfig) *ServeCommand {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &ServeCommand{config: config, out: stdout(config.Out)}
}

// Execute runs the server
func (c *ServeCommand) Execute(ctx context.Context) error {
	settings := c.config.Settings

	ds, err := loadDataset(ctx, settings, c.config.Logger)
	if err != nil {
		return err
	}
	if err := validateDataset(ds, c.config.Verbose, c.out); err != nil {
		return err
	}

	service := analytics.NewService(c.config.Logger)
	service.PerSupplierTrend = settings.Analysis.TrendBy == "supplier"
	result, err := service.Run(ctx, ds)
	if err != nil {
		return fmt.Errorf("error running analysis: %w", err)
	}

	server, err := api.NewServer(ds, result, settings.Server, c.config.Logger)
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Fprintf(c.out, "🌐 Serving %d analyzed shipments on :%d\n", result.Analyzed, settings.Server.Port)
		if settings.Server.JWTSecret == "" {
			fmt.Fprintln(c.out, "⚠️  No JWT secret configured, report endpoints are public")
		}
	}
	return server.Run(ctx)
}
