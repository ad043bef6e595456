// Package config loads lith settings from YAML and command line flags.
package config

import (
	"fmt"

	"github.com/rneatherway/lith/gen"
	"github.com/rneatherway/lith/light"
)

// Config holds all settings.
type Config struct {
	Lithophane LithophaneConfig `yaml:"lithophane"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LithophaneConfig holds the mesh generation settings.
type LithophaneConfig struct {
	Generator      string  `yaml:"generator"` // flat, flat-image or cylinder
	Width          int     `yaml:"width"`     // Target width in pixels
	Scale          float32 `yaml:"scale"`     // Relief depth
	Filter         string  `yaml:"filter"`    // Resampling filter
	CylinderRadius float32 `yaml:"cylinder_radius"`
	CylinderHeight float32 `yaml:"cylinder_height"`
}

// OutputConfig holds output file settings.
type OutputConfig struct {
	ASCII  bool   `yaml:"ascii"`  // Write ASCII instead of binary STL
	Viewer string `yaml:"viewer"` // Command used by -v
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the settings used when nothing else is given.
func Default() *Config {
	opts := gen.DefaultOptions()
	return &Config{
		Lithophane: LithophaneConfig{
			Generator:      opts.Kind.String(),
			Width:          opts.Width,
			Scale:          opts.Scale,
			Filter:         string(opts.Filter),
			CylinderRadius: opts.CylinderRadius,
			CylinderHeight: opts.CylinderHeight,
		},
		Output: OutputConfig{
			Viewer: "f3d",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Options converts the lithophane settings into generator options.
func (c *Config) Options() (gen.Options, error) {
	kind, err := gen.ParseKind(c.Lithophane.Generator)
	if err != nil {
		return gen.Options{}, err
	}
	filter, err := light.ParseFilter(c.Lithophane.Filter)
	if err != nil {
		return gen.Options{}, err
	}
	opts := gen.Options{
		Kind:           kind,
		Scale:          c.Lithophane.Scale,
		Width:          c.Lithophane.Width,
		Filter:         filter,
		CylinderRadius: c.Lithophane.CylinderRadius,
		CylinderHeight: c.Lithophane.CylinderHeight,
	}
	if err := opts.Validate(); err != nil {
		return gen.Options{}, fmt.Errorf("invalid lithophane settings: %w", err)
	}
	return opts, nil
}
