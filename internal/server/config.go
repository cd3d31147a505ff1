package server

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Defaults for a config file that is missing or partial.
const (
	DefaultAddress      = ":8080"
	DefaultStoreBackend = "memory"
	DefaultStorePath    = "wagewise.db"
)

// StoreConfig selects the profile registry backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // memory, sqlite
	Path    string `mapstructure:"path"`    // sqlite database file
}

// LoggingConfig holds logging options for the server process.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address string        `mapstructure:"address"`
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// LoadConfig loads the server configuration from a YAML file. A missing
// file is not an error; defaults are returned.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("address", DefaultAddress)
	v.SetDefault("store.backend", DefaultStoreBackend)
	v.SetDefault("store.path", DefaultStorePath)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetEnvPrefix("WAGEWISE")
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read server config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat server config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	switch cfg.Store.Backend {
	case "memory", "sqlite":
	default:
		return nil, fmt.Errorf("invalid store backend %q (want memory or sqlite)", cfg.Store.Backend)
	}
	return &cfg, nil
}
