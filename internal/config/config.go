// Package config centralises configuration parsing for trainingstats.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/sstent/trainingstats/internal/parser"
)

// Config captures the runtime settings of a report run.
type Config struct {
	InputPath   string  // empty means the built-in sample packages, "-" means stdin
	WeightKg    float64 // athlete weight for device files
	HeightCm    float64 // athlete height for device files
	PoolLengthM float64 // pool length for swims that do not record one
}

// Load reads environment variables into Config, applying defaults for anything unset.
func Load() Config {
	return Config{
		InputPath:   getEnv("TRAINING_INPUT", ""),
		WeightKg:    getFloatEnv("ATHLETE_WEIGHT_KG", 75),
		HeightCm:    getFloatEnv("ATHLETE_HEIGHT_CM", 175),
		PoolLengthM: getFloatEnv("SWIM_POOL_LENGTH_M", 25),
	}
}

// RegisterFlags binds command-line flags to c. Values already in c become the
// flag defaults, so flags override the environment.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.InputPath, "input", c.InputPath, "path to a packages, FIT, TCX or GPX file (- for stdin)")
	fs.Float64Var(&c.WeightKg, "weight", c.WeightKg, "athlete weight in kg for device files")
	fs.Float64Var(&c.HeightCm, "height", c.HeightCm, "athlete height in cm for device files")
	fs.Float64Var(&c.PoolLengthM, "pool", c.PoolLengthM, "pool length in m for swims without one")
}

// Validate checks the athlete settings.
func (c Config) Validate() error {
	var errs []error
	if c.WeightKg < 0 {
		errs = append(errs, fmt.Errorf("weight must not be negative, got %v", c.WeightKg))
	}
	if c.HeightCm <= 0 {
		errs = append(errs, fmt.Errorf("height must be positive, got %v", c.HeightCm))
	}
	if c.PoolLengthM <= 0 {
		errs = append(errs, fmt.Errorf("pool length must be positive, got %v", c.PoolLengthM))
	}
	return errors.Join(errs...)
}

// Athlete returns the body data handed to the file parsers.
func (c Config) Athlete() parser.Athlete {
	return parser.Athlete{
		WeightKg:    c.WeightKg,
		HeightCm:    c.HeightCm,
		PoolLengthM: c.PoolLengthM,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
