package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Input  string
	N      int
	Tile   int
	Engine string
	Scale  int
	TPS    int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{N: 256, Tile: 0, Engine: "parallel", Scale: 3, TPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "in", c.Input, "input board file (random board when empty)")
	fs.IntVar(&c.N, "n", c.N, "board side length")
	fs.IntVar(&c.Tile, "tile", c.Tile, "parallel tile side length (engine default when 0)")
	fs.StringVar(&c.Engine, "engine", c.Engine, "engine to step with")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random board")
}
