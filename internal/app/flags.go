package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Width    int
	Height   int
	Scale    int
	TPS      int
	Seed     int64
	Sustain  bool
	Pattern  string
	Density  float64
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Width: 80, Height: 40, Scale: 12, TPS: 16, HUDWidth: 200}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for soups and sustain cells (0 draws sustain cells from the OS)")
	fs.BoolVar(&c.Sustain, "sustain", c.Sustain, "inject one random live cell per generation")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern to place at the centre")
	fs.Float64Var(&c.Density, "density", c.Density, "initial soup density when no pattern is given")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the side panel in pixels (0 hides it)")
}

// SimConfig renders the simulation-related settings in the key/value form
// accepted by registered factories.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"sustain": strconv.FormatBool(c.Sustain),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
	if c.Pattern != "" {
		m["pattern"] = c.Pattern
	}
	return m
}

// Normalize raises values that would break the window or the step timer to
// their smallest usable setting.
func (c *Config) Normalize() {
	c.Scale = max(c.Scale, 1)
	c.TPS = max(c.TPS, 1)
	c.HUDWidth = max(c.HUDWidth, 0)
}
