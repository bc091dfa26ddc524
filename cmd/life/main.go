package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"golbench/internal/core"
	"golbench/internal/driver"
	"golbench/internal/engine"
	"golbench/internal/golio"
)

func loadBoard(cfg *Config) (*core.Grid, error) {
	if cfg.Input != "" {
		return golio.ReadFile(cfg.Input, cfg.N)
	}
	g, err := core.NewGrid(cfg.N)
	if err != nil {
		return nil, err
	}
	g.Randomize(cfg.Seed)
	return g, nil
}

func buildEngine(name string, cfg *Config) engine.Engine {
	factory, ok := engine.Engines()[name]
	if !ok {
		log.Fatalf("unknown engine %q", name)
	}
	return factory(map[string]string{"tile": strconv.Itoa(cfg.Tile)})
}

// printCorner shows the top-left corner of the board, up to 4x4 cells.
func printCorner(g *core.Grid) {
	span := 4
	if g.N() < span {
		span = g.N()
	}
	cells := g.Cells()
	for y := 0; y < span; y++ {
		for x := 0; x < span; x++ {
			fmt.Printf("%d ", cells[y*g.N()+x])
		}
		fmt.Println()
	}
}

func runOne(eng engine.Engine, initial *core.Grid, steps int, perStep bool) *driver.Result {
	d := &driver.Driver{Engine: eng, RecordSteps: perStep}
	res, err := d.Run(initial, steps)
	if err != nil {
		log.Fatalf("%s run failed: %v", eng.Name(), err)
	}
	if perStep {
		fmt.Println("Generation\t Time")
		for k, dur := range res.StepTimes {
			fmt.Printf("[%d]\t\t %fs\n", k, dur.Seconds())
		}
	}
	fmt.Printf("%s: %d generations in %s (%d births, %d deaths)\n",
		eng.Name(), res.Steps, res.Elapsed, res.Totals.Births, res.Totals.Deaths)
	return res
}

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	initial, err := loadBoard(cfg)
	if err != nil {
		log.Fatalf("load board: %v", err)
	}
	fmt.Printf("board %dx%d, %d alive\n", cfg.N, cfg.N, initial.Alive())
	printCorner(initial)

	var final *core.Grid
	switch cfg.Engine {
	case "both":
		par := runOne(buildEngine("parallel", cfg), initial, cfg.Steps, false)
		seq := runOne(buildEngine("sequential", cfg), initial, cfg.Steps, true)
		if !par.Final.Equal(seq.Final) {
			log.Fatalf("engines disagree after %d generations", cfg.Steps)
		}
		fmt.Println("engines agree")
		final = par.Final
	case "sequential":
		final = runOne(buildEngine(cfg.Engine, cfg), initial, cfg.Steps, true).Final
	default:
		final = runOne(buildEngine(cfg.Engine, cfg), initial, cfg.Steps, false).Final
	}

	printCorner(final)

	out := cfg.Output
	if out == "" {
		out = golio.OutputName(cfg.N)
	}
	fmt.Printf("writing to: %s\n", out)
	if err := golio.WriteFile(out, final); err != nil {
		log.Fatalf("write board: %v", err)
	}
}
