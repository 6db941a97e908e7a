// Package config loads gridkit CLI settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridkit/gridgraph"
)

// ErrBadConnectivity indicates a connectivity other than 4 or 8.
var ErrBadConnectivity = errors.New("config: connectivity must be 4 or 8")

// ErrBadFrontier indicates a negative max_frontier.
var ErrBadFrontier = errors.New("config: max_frontier must not be negative")

// Config is the on-disk configuration. Keys absent from the file keep their defaults.
type Config struct {
	Connectivity  int  `yaml:"connectivity"`
	LandThreshold int  `yaml:"land_threshold"`
	MaxFrontier   int  `yaml:"max_frontier"`
	Verbose       bool `yaml:"verbose"`
}

// Default mirrors gridgraph.DefaultGridOptions.
func Default() Config {
	opts := gridgraph.DefaultGridOptions()
	return Config{
		Connectivity:  4,
		LandThreshold: opts.LandThreshold,
		MaxFrontier:   opts.MaxFrontier,
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Connectivity != 4 && c.Connectivity != 8 {
		return fmt.Errorf("%w: got %d", ErrBadConnectivity, c.Connectivity)
	}
	if c.MaxFrontier < 0 {
		return fmt.Errorf("%w: got %d", ErrBadFrontier, c.MaxFrontier)
	}
	return nil
}

// GridOptions converts c into gridgraph options.
func (c Config) GridOptions() gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = c.LandThreshold
	opts.MaxFrontier = c.MaxFrontier
	if c.Connectivity == 8 {
		opts.Conn = gridgraph.Conn8
	}
	return opts
}
