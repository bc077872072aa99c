package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-variable defaults for the CLI. Flags take
// precedence over the environment.
type Config struct {
	Dims    int   `env:"NDCUBE_DIMS" envDefault:"3"`
	Seed    int64 `env:"NDCUBE_SEED" envDefault:"0"`
	Shuffle int   `env:"NDCUBE_SHUFFLE" envDefault:"100"`
}

// loadConfig parses CLI defaults from the environment.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
