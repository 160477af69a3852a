// Package config loads the configuration of the example programs from
// defaults, an optional YAML file, an optional .env file and COLLECT_
// environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lguimbarda/min-collect/collect/collecterrors"
	"github.com/lguimbarda/min-collect/internal/logging"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "COLLECT"

// Config is the configuration shared by the example programs.
type Config struct {
	Log      logging.Config `mapstructure:"log"`
	Database Database       `mapstructure:"database"`
	// Batch is the group size of nested collectors.
	Batch int `mapstructure:"batch"`
	// Top is how many results a program reports.
	Top     int  `mapstructure:"top"`
	Metrics bool `mapstructure:"metrics"`
}

// Database selects the database/sql driver and data source.
type Database struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

var defaults = map[string]any{
	"log.level":       "info",
	"log.format":      logging.FormatConsole,
	"log.nocolor":     false,
	"log.timestamp":   false,
	"database.driver": "sqlite3",
	"database.dsn":    ":memory:",
	"batch":           100,
	"top":             10,
	"metrics":         false,
}

type loaderConfig struct {
	configFile string
	envFile    string
}

// Option configures Load.
type Option func(*loaderConfig)

// WithConfigFile reads a YAML config file.
func WithConfigFile(path string) Option {
	return func(lc *loaderConfig) { lc.configFile = path }
}

// WithEnvFile reads a .env file. Variables already set in the
// environment take precedence over it.
func WithEnvFile(path string) Option {
	return func(lc *loaderConfig) { lc.envFile = path }
}

// Load builds the configuration.
func Load(opts ...Option) (*Config, error) {
	var lc loaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if lc.configFile != "" {
		v.SetConfigFile(lc.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, collecterrors.Wrapf(err, "read config file %s", lc.configFile)
		}
	}

	if lc.envFile != "" {
		env, err := godotenv.Read(lc.envFile)
		if err != nil {
			return nil, collecterrors.Wrapf(err, "read env file %s", lc.envFile)
		}
		for name, value := range env {
			key, ok := keyOf(name)
			if !ok {
				continue
			}
			if _, set := os.LookupEnv(name); !set {
				v.Set(key, value)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, collecterrors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Log.Validate(); err != nil {
		return nil, err
	}
	if cfg.Batch < 1 {
		return nil, fmt.Errorf("batch must be positive (got: %d)", cfg.Batch)
	}
	return &cfg, nil
}

// keyOf maps COLLECT_DATABASE_DSN to database.dsn.
func keyOf(name string) (string, bool) {
	rest, ok := strings.CutPrefix(name, EnvPrefix+"_")
	if !ok || rest == "" {
		return "", false
	}
	return strings.ReplaceAll(strings.ToLower(rest), "_", "."), true
}
