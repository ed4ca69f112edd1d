package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	SeedFormatASCII  = "ascii"
	SeedFormatBinary = "binary"
)

// Config holds the configuration for a simulation run
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	Toroidal            bool          `json:"toroidal"`
	Workers             int           `json:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	Pattern             string        `json:"pattern"`
	SeedFile            string        `json:"seed_file"`
	SeedFormat          string        `json:"seed_format"`
	SaveFile            string        `json:"save_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		Toroidal:            true,
		Workers:             1,
		UseMemoryPool:       true,
		Pattern:             "random",
		SeedFormat:          SeedFormatASCII,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values a run cannot start with
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Errorf("negative size %dx%d", c.Width, c.Height)
	case c.MaxGenerations < 0:
		return errors.Errorf("negative max_generations %d", c.MaxGenerations)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("random_density %v outside [0,1]", c.RandomDensity)
	case c.SeedFormat != SeedFormatASCII && c.SeedFormat != SeedFormatBinary:
		return errors.Errorf("unknown seed_format %q", c.SeedFormat)
	}
	return nil
}
