package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Options string
	HUD     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "convchain", Scale: 6, TPS: 30, Seed: 42, HUD: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Options, "set", c.Options, "comma separated key=value simulation options, e.g. n=3,temperature=0.5")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
}

// SimOptions parses Options into the map handed to a core.Factory.
func (c *Config) SimOptions() (map[string]string, error) {
	opts := map[string]string{}
	if strings.TrimSpace(c.Options) == "" {
		return opts, nil
	}
	for _, pair := range strings.Split(c.Options, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid option %q, want key=value", pair)
		}
		opts[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return opts, nil
}
