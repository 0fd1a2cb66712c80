package convchain

import (
	"strconv"

	cc "convchain/pkg/convchain"
)

// Config controls the synthesis run shown by the Synth simulation.
type Config struct {
	Width  int
	Height int

	// Sample names a bitmap registered in internal/samples.
	Sample      string
	N           int
	Temperature float64
	// Changes is the number of update attempts performed per Step.
	Changes int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       96,
		Height:      64,
		Sample:      "bars",
		N:           3,
		Temperature: 0.5,
		Changes:     500,
		Seed:        1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["sample"]; ok && v != "" {
		c.Sample = v
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && cc.ValidatePatternSize(parsed) == nil {
			c.N = parsed
		}
	}
	if v, ok := cfg["temperature"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Temperature = parsed
		}
	}
	if v, ok := cfg["changes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Changes = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
