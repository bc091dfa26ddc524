package main

import "flag"

// Config represents the command-line parameters for the simulation run.
type Config struct {
	Input  string
	Output string
	N      int
	Steps  int
	Tile   int
	Engine string
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{N: 256, Steps: 100, Tile: 0, Engine: "both", Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "in", c.Input, "input board file (random board when empty)")
	fs.StringVar(&c.Output, "out", c.Output, "output board file (tableNxN_new.bin when empty)")
	fs.IntVar(&c.N, "n", c.N, "board side length")
	fs.IntVar(&c.Steps, "t", c.Steps, "generations to play")
	fs.IntVar(&c.Tile, "tile", c.Tile, "parallel tile side length (engine default when 0)")
	fs.StringVar(&c.Engine, "engine", c.Engine, "engine to run: sequential, parallel or both")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random board")
}
