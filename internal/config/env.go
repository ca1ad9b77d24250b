// Package config loads runtime options for the terminal frontend.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Options are frontend settings only; physics constants are fixed.
type Options struct {
	// Seed for hole layouts; 0 picks one from the clock.
	Seed uint64 `env:"ICEBEER_SEED" envDefault:"0"`
	// TPS is the number of simulation ticks per second.
	TPS int `env:"ICEBEER_TPS" envDefault:"60"`
	// DebugLog, when set, receives log output while the TUI owns the terminal.
	DebugLog string `env:"ICEBEER_DEBUG_LOG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Options from the environment. It does not validate: callers
// merge command-line overrides first and then call Validate.
func Load() (Options, error) {
	var o Options
	if err := ParseEnv(&o); err != nil {
		return Options{}, err
	}
	return o, nil
}

func (o Options) Validate() error {
	if o.TPS <= 0 || o.TPS > 1000 {
		return fmt.Errorf("tps must be between 1 and 1000 (got %d)", o.TPS)
	}
	return nil
}
