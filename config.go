package depot

import (
	"os"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// RemovePolicy selects how an archetype closes the gap left by a removed row.
type RemovePolicy string

const (
	// RemoveShift shifts every later row down by one, keeping row order.
	RemoveShift RemovePolicy = "shift"
	// RemoveSwap moves the last row into the gap.
	RemoveSwap RemovePolicy = "swap"
)

// Config holds storage tuning. The zero value is not valid; start from
// DefaultConfig.
//
// Environment variables read by ConfigFromEnv:
//
//	DEPOT_REMOVE_POLICY=shift|swap
//	DEPOT_ROW_CAPACITY=64
//	DEPOT_LOG_LEVEL=debug
type Config struct {
	RemovePolicy RemovePolicy `yaml:"removePolicy" config:"DEPOT_REMOVE_POLICY"`
	// RowCapacity preallocates rows for every new archetype table.
	RowCapacity int    `yaml:"rowCapacity" config:"DEPOT_ROW_CAPACITY"`
	LogLevel    string `yaml:"logLevel" config:"DEPOT_LOG_LEVEL"`
}

func DefaultConfig() Config {
	return Config{
		RemovePolicy: RemoveShift,
		RowCapacity:  0,
		LogLevel:     zerolog.InfoLevel.String(),
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, eris.Wrapf(err, "failed to read config %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, eris.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, eris.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// ConfigFromEnv overlays matching environment variables on DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "failed to load config from environment")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, eris.Wrap(err, "invalid config from environment")
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.RemovePolicy {
	case RemoveShift, RemoveSwap:
	default:
		return eris.Errorf("unknown remove policy %q", c.RemovePolicy)
	}
	if c.RowCapacity < 0 {
		return eris.Errorf("row capacity must not be negative, got %d", c.RowCapacity)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty LogLevel means info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, eris.Wrapf(err, "unknown log level %q", c.LogLevel)
	}
	return level, nil
}
