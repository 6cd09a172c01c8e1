package life

import (
	"strconv"

	"gameoflife/pkg/core"
)

// Config holds parameters for the Life simulation.
type Config struct {
	Width   int
	Height  int
	Sustain bool

	// Seed selects a deterministic source for sustain cells and soups. Zero
	// means draw sustain cells from the operating system.
	Seed int64

	// Pattern, when set, is placed at the centre of the board.
	Pattern string
	// Density seeds a random soup when no pattern is given.
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 80, Height: 40}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	// sizes are passed through unchecked so construction can reject them
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["sustain"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Sustain = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// NewWithConfig builds a simulation from cfg.
func NewWithConfig(cfg Config) (*Life, error) {
	var src core.IndexSource = core.OSSource{}
	if cfg.Seed != 0 {
		src = core.NewRNG(cfg.Seed)
	}
	l, err := NewWithSource(cfg.Height, cfg.Width, src)
	if err != nil {
		return nil, err
	}
	l.SetSustain(cfg.Sustain)
	if cfg.Density > 0 {
		l.SetDensity(cfg.Density)
	}
	switch {
	case cfg.Pattern != "":
		p, err := LookupPattern(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		l.PlaceCentered(p)
	case cfg.Density > 0:
		l.Randomize(cfg.Seed, cfg.Density)
	}
	return l, nil
}
