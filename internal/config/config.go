package config

import (
	"fmt"
	"strconv"

	"pkg.jsn.cam/mocksensors/pkg/mocksensors"
)

const (
	DefaultCount     = 200
	DefaultOutput    = "mock-sensors.json"
	DefaultGenerator = "sensors"
)

// Config holds the options of a single generation run
type Config struct {
	Count     int
	Output    string
	Generator string
	Progress  bool

	// Seed is only used when Seeded is set; otherwise a random seed is drawn.
	Seed   uint64
	Seeded bool
}

// Default returns the configuration used when no flags are given
func Default() Config {
	return Config{
		Count:     DefaultCount,
		Output:    DefaultOutput,
		Generator: DefaultGenerator,
	}
}

// Validate rejects values that cannot produce a document
func (c Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: %d", mocksensors.ErrInvalidCount, c.Count)
	}
	if c.Output == "" {
		return mocksensors.ErrNoOutput
	}
	return nil
}

// ParseCount parses a positional count argument
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", mocksensors.ErrInvalidCount, n)
	}
	return n, nil
}
