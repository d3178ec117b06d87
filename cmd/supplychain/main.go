package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/vsinha/supplychain/pkg/infrastructure/config"
	"github.com/vsinha/supplychain/pkg/infrastructure/logging"
	"github.com/vsinha/supplychain/pkg/interfaces/cli/commands"
)

type command interface {
	Execute(ctx context.Context) error
}

func main() {
	if len(os.Args) < 2 {
		commands.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1], os.Args[2:])
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cli holds the parsed flag set of one subcommand and the config keys its
// flags override
type cli struct {
	flags      *pflag.FlagSet
	keys       map[string]string
	configFile *string
	verbose    *bool
	help       *bool
}

func newCLI(name string) *cli {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	c := &cli{
		flags:      fs,
		keys:       map[string]string{},
		configFile: fs.String("config", "", "Config file"),
		verbose:    fs.Bool("verbose", false, "Enable verbose output"),
		help:       fs.Bool("help", false, "Show help message"),
	}
	c.stringFlag("log-level", "log.level", "info", "Log level: debug, info, warn, error")
	c.stringFlag("log-format", "log.format", "console", "Log format: console, json")
	return c
}

func (c *cli) stringFlag(name, key, value, usage string) {
	c.flags.String(name, value, usage)
	c.keys[name] = key
}

func (c *cli) intFlag(name, key string, value int, usage string) {
	c.flags.Int(name, value, usage)
	c.keys[name] = key
}

func (c *cli) boolFlag(name, key string, value bool, usage string) {
	c.flags.Bool(name, value, usage)
	c.keys[name] = key
}

func (c *cli) floatFlag(name, key string, value float64, usage string) {
	c.flags.Float64(name, value, usage)
	c.keys[name] = key
}

func (c *cli) sourceFlags() {
	c.stringFlag("source", "source.kind", config.SourceGenerate, "Dataset source: generate, csv, postgres, kv")
	c.stringFlag("csv-dir", "source.csv_dir", "data", "CSV dataset directory")
	c.stringFlag("dsn", "database.dsn", "", "Postgres connection string")
	c.stringFlag("kv-path", "kv.path", "supplychain.badger", "Badger directory")
}

func (c *cli) generatorFlags() {
	c.flags.Int64("seed", 0, "Random seed, 0 means time-based")
	c.keys["seed"] = "generator.seed"
	c.stringFlag("preset", "generator.preset", "full", "Generator preset: full or demo")
	c.intFlag("shipments", "generator.shipments", 0, "Number of shipments")
	c.stringFlag("start-date", "generator.start_date", "", "First possible order date, YYYY-MM-DD")
	c.floatFlag("delay-probability", "generator.delay_probability", 0, "Probability that a shipment is delayed")
	c.floatFlag("in-transit-probability", "generator.in_transit_probability", 0, "Probability that a shipment is in transit")
}

func (c *cli) load() (*config.Config, *zap.Logger, error) {
	settings, err := config.Load(config.Options{
		ConfigFile: *c.configFile,
		Flags:      c.flags,
		Keys:       c.keys,
	})
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(settings.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return settings, logger, nil
}

func run(ctx context.Context, name string, args []string) error {
	if name == "help" || name == "-h" || name == "--help" {
		commands.PrintUsage(os.Stdout)
		return nil
	}

	c := newCLI(name)
	var outputDir *string
	var writeCSV *bool
	var target *string
	var subject *string

	switch name {
	case "generate":
		c.generatorFlags()
		outputDir = c.flags.String("output", "sql", "Output directory")
		writeCSV = c.flags.Bool("csv", false, "Also write CSV tables")
	case "analyze":
		c.sourceFlags()
		c.generatorFlags()
		c.stringFlag("format", "output.format", "text", "Output format: text, json, yaml, csv, xlsx, html")
		c.stringFlag("output", "output.dir", "", "Output directory")
		c.stringFlag("trend-by", "analysis.trend_by", "all", "Trend series: all or supplier")
		c.boolFlag("include-warnings", "analysis.include_warnings", true, "Include warnings in output")
	case "seed":
		c.sourceFlags()
		c.generatorFlags()
		target = c.flags.String("target", config.SourcePostgres, "Store to seed: postgres, kv, csv")
	case "serve":
		c.sourceFlags()
		c.generatorFlags()
		c.intFlag("port", "server.port", 8080, "Listen port")
		c.stringFlag("jwt-secret", "server.jwt_secret", "", "JWT signing secret")
		c.stringFlag("trend-by", "analysis.trend_by", "all", "Trend series: all or supplier")
	case "token":
		c.stringFlag("jwt-secret", "server.jwt_secret", "", "JWT signing secret")
		c.flags.Duration("ttl", 0, "Token lifetime")
		c.keys["ttl"] = "server.token_ttl"
		subject = c.flags.String("subject", "analyst", "Token subject")
	default:
		commands.PrintUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", name)
	}

	if err := c.flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			commands.PrintUsage(os.Stdout)
			return nil
		}
		return err
	}
	if *c.help {
		commands.PrintUsage(os.Stdout)
		return nil
	}

	settings, logger, err := c.load()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var cmd command
	switch name {
	case "generate":
		cmd = commands.NewGenerateCommand(commands.GenerateConfig{
			Settings:  settings,
			Logger:    logger,
			OutputDir: *outputDir,
			WriteCSV:  *writeCSV,
			Verbose:   *c.verbose,
		})
	case "analyze":
		cmd = commands.NewAnalyzeCommand(commands.AnalyzeConfig{
			Settings: settings,
			Logger:   logger,
			Verbose:  *c.verbose,
		})
	case "seed":
		cmd = commands.NewSeedCommand(commands.SeedConfig{
			Settings: settings,
			Logger:   logger,
			Target:   *target,
			Verbose:  *c.verbose,
		})
	case "serve":
		cmd = commands.NewServeCommand(commands.ServeConfig{
			Settings: settings,
			Logger:   logger,
			Verbose:  *c.verbose,
		})
	case "token":
		cmd = commands.NewTokenCommand(commands.TokenConfig{
			Settings: settings,
			Subject:  *subject,
		})
	}

	return cmd.Execute(ctx)
}
