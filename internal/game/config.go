package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible runs.
	// A seed of 0 means a time-based seed will be used.
	Seed int64 `env:"ZOMBICIDE_SEED" envDefault:"0"`

	// MapIndex selects which embedded map the session is played on.
	MapIndex int `env:"ZOMBICIDE_MAP" envDefault:"0"`

	// Telemetry enables OTLP trace export when true. The game runs
	// fine without it, recording no spans.
	Telemetry bool `env:"ZOMBICIDE_TELEMETRY" envDefault:"false"`
}

// LoadConfigFromEnv reads configuration from ZOMBICIDE_* environment
// variables, falling back to the defaults declared on Config.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
