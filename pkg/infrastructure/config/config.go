package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Source kinds
const (
	SourceGenerate = "generate"
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
	SourceKV       = "kv"
)

// EnvPrefix is prepended to every environment override, e.g. SUPPLYCHAIN_LOG_LEVEL
const EnvPrefix = "SUPPLYCHAIN"

type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Source    SourceConfig    `mapstructure:"source"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Database  DatabaseConfig  `mapstructure:"database"`
	KV        KVConfig        `mapstructure:"kv"`
	Output    OutputConfig    `mapstructure:"output"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Server    ServerConfig    `mapstructure:"server"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type SourceConfig struct {
	Kind   string `mapstructure:"kind"`
	CSVDir string `mapstructure:"csv_dir"`
}

// GeneratorConfig overrides preset values. Nil fields keep the preset default.
type GeneratorConfig struct {
	Seed   int64  `mapstructure:"seed"`
	Preset string `mapstructure:"preset"`

	Shipments            *int     `mapstructure:"shipments"`
	StartDate            string   `mapstructure:"start_date"`
	OrderWindowDays      *int     `mapstructure:"order_window_days"`
	QuantityMin          *int     `mapstructure:"quantity_min"`
	QuantityMax          *int     `mapstructure:"quantity_max"`
	DelayProbability     *float64 `mapstructure:"delay_probability"`
	DelayMin             *int     `mapstructure:"delay_min"`
	DelayMax             *int     `mapstructure:"delay_max"`
	EarlyMin             *int     `mapstructure:"early_min"`
	EarlyMax             *int     `mapstructure:"early_max"`
	MinActualDays        *int     `mapstructure:"min_actual_days"`
	InTransitProbability *float64 `mapstructure:"in_transit_probability"`
}

type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type KVConfig struct {
	Path     string `mapstructure:"path"`
	InMemory bool   `mapstructure:"in_memory"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	Dir    string `mapstructure:"dir"`
}

type AnalysisConfig struct {
	TrendBy         string `mapstructure:"trend_by"`
	IncludeWarnings bool   `mapstructure:"include_warnings"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	JWTSecret       string        `mapstructure:"jwt_secret"`
	JWTIssuer       string        `mapstructure:"jwt_issuer"`
	TokenTTL        time.Duration `mapstructure:"token_ttl"`
}

// Options controls where Load reads from
type Options struct {
	// ConfigFile is an explicit config path. Empty searches ./configs and .
	ConfigFile string
	// Flags are command line flags to bind. Keys maps flag names to config keys.
	Flags *pflag.FlagSet
	Keys  map[string]string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("source.kind", SourceGenerate)
	v.SetDefault("source.csv_dir", "data")

	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.preset", "full")
	v.SetDefault("generator.start_date", "")

	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("kv.path", "supplychain.badger")
	v.SetDefault("kv.in_memory", false)

	v.SetDefault("output.format", "text")
	v.SetDefault("output.dir", "")

	v.SetDefault("analysis.trend_by", "all")
	v.SetDefault("analysis.include_warnings", true)

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.jwt_secret", "")
	v.SetDefault("server.jwt_issuer", "supplychain")
	v.SetDefault("server.token_ttl", 24*time.Hour)
}

// bindEnvVariables registers generator overrides, which have no defaults
// and are therefore invisible to AutomaticEnv
func bindEnvVariables(v *viper.Viper) {
	for _, key := range []string{
		"generator.shipments",
		"generator.order_window_days",
		"generator.quantity_min",
		"generator.quantity_max",
		"generator.delay_probability",
		"generator.delay_min",
		"generator.delay_max",
		"generator.early_min",
		"generator.early_max",
		"generator.min_actual_days",
		"generator.in_transit_probability",
	} {
		_ = v.BindEnv(key)
	}
}

// Load reads configuration from defaults, an optional yaml file, environment
// variables and bound flags, in increasing priority
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("supplychain")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if opts.Flags != nil {
		for name, key := range opts.Keys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				return nil, fmt.Errorf("unknown flag for config key %s: %s", key, name)
			}
			// unchanged flags defer to file, env and defaults
			if !flag.Changed {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func oneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("unsupported %s: %s (supported: %s)", field, value, strings.Join(allowed, ", "))
}

func checkProbability(field string, p *float64) error {
	if p != nil && (*p < 0 || *p > 1) {
		return fmt.Errorf("%s must be in [0, 1], got %g", field, *p)
	}
	return nil
}

func checkRange(field string, lo, hi *int) error {
	if lo != nil && hi != nil && *hi < *lo {
		return fmt.Errorf("invalid %s range [%d, %d]", field, *lo, *hi)
	}
	return nil
}

// Validate rejects unknown kinds and formats, inverted ranges and bad probabilities
func (c *Config) Validate() error {
	if err := oneOf("log level", c.Log.Level, "debug", "info", "warn", "error"); err != nil {
		return err
	}
	if err := oneOf("log format", c.Log.Format, "console", "json"); err != nil {
		return err
	}
	if err := oneOf("source kind", c.Source.Kind, SourceGenerate, SourceCSV, SourcePostgres, SourceKV); err != nil {
		return err
	}
	if err := oneOf("output format", c.Output.Format, "text", "json", "csv", "yaml", "xlsx", "html"); err != nil {
		return err
	}
	if err := oneOf("trend grouping", c.Analysis.TrendBy, "all", "supplier"); err != nil {
		return err
	}
	if err := oneOf("generator preset", c.Generator.Preset, "full", "demo"); err != nil {
		return err
	}

	g := c.Generator
	if err := checkProbability("delay probability", g.DelayProbability); err != nil {
		return err
	}
	if err := checkProbability("in-transit probability", g.InTransitProbability); err != nil {
		return err
	}
	if err := checkRange("quantity", g.QuantityMin, g.QuantityMax); err != nil {
		return err
	}
	if err := checkRange("delay day", g.DelayMin, g.DelayMax); err != nil {
		return err
	}
	if err := checkRange("early day", g.EarlyMin, g.EarlyMax); err != nil {
		return err
	}
	if g.StartDate != "" {
		if _, err := time.Parse("2006-01-02", g.StartDate); err != nil {
			return fmt.Errorf("invalid generator start date: %s (expected YYYY-MM-DD)", g.StartDate)
		}
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}
