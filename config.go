package main

import (
	"os"
	"path/filepath"

	"github.com/heshanpadmasiri/valueops/rectangle"
	"github.com/pelletier/go-toml/v2"
)

// config represents evaluation settings
type config struct {
	Tolerance      rectangle.Tolerance
	Strict         bool
	FloatPrecision int
}

// fileConfig mirrors Config.toml; unset keys stay nil and keep the default
type fileConfig struct {
	RelativeTolerance *float64 `toml:"relative_tolerance"`
	AbsoluteTolerance *float64 `toml:"absolute_tolerance"`
	Strict            *bool    `toml:"strict"`
	FloatPrecision    *int     `toml:"float_precision"`
}

func defaultConfig() config {
	return config{
		Tolerance:      rectangle.DefaultTolerance,
		Strict:         false,
		FloatPrecision: -1,
	}
}

// loadConfig loads settings from Config.toml in the working directory
func loadConfig() config {
	c := defaultConfig()

	wd, err := os.Getwd()
	if err != nil {
		return c
	}

	configPath := filepath.Join(wd, "Config.toml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file doesn't exist, return defaults
		return c
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		// Invalid TOML, return defaults
		return c
	}

	// Use values from file if provided, otherwise keep defaults
	if fc.RelativeTolerance != nil && *fc.RelativeTolerance >= 0 {
		c.Tolerance.Relative = *fc.RelativeTolerance
	}
	if fc.AbsoluteTolerance != nil && *fc.AbsoluteTolerance >= 0 {
		c.Tolerance.Absolute = *fc.AbsoluteTolerance
	}
	if fc.Strict != nil {
		c.Strict = *fc.Strict
	}
	if fc.FloatPrecision != nil {
		c.FloatPrecision = *fc.FloatPrecision
	}

	return c
}
