package app

import (
	"flag"

	"pepse/internal/world"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Seed   int64
	TPS    int
	Width  int
	Height int
	Tuning string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := world.DefaultConfig()
	return &Config{Seed: d.Seed, TPS: 60, Width: d.ViewportWidth, Height: d.ViewportHeight}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "world seed")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.StringVar(&c.Tuning, "tuning", c.Tuning, "YAML tuning file")
}

// World loads the tuning file and applies the flags that were set explicitly
// on fs, so a tuning file can still choose the seed and viewport.
func (c *Config) World(fs *flag.FlagSet) (world.Config, error) {
	cfg, err := world.LoadTuning(c.Tuning)
	if err != nil {
		return cfg, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = c.Seed
		case "width":
			cfg.ViewportWidth = c.Width
		case "height":
			cfg.ViewportHeight = c.Height
		}
	})
	return cfg, cfg.Validate()
}
