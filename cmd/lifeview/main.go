//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"golbench/internal/app"
	"golbench/internal/core"
	"golbench/internal/engine"
	"golbench/internal/golio"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := engine.Engines()[cfg.Engine]
	if !ok {
		log.Fatalf("unknown engine %q", cfg.Engine)
	}
	eng := factory(map[string]string{"tile": strconv.Itoa(cfg.Tile)})

	var initial *core.Grid
	var err error
	if cfg.Input != "" {
		initial, err = golio.ReadFile(cfg.Input, cfg.N)
	} else {
		initial, err = core.NewGrid(cfg.N)
		if err == nil {
			initial.Randomize(cfg.Seed)
		}
	}
	if err != nil {
		log.Fatalf("load board: %v", err)
	}

	game, err := app.New(eng, initial, cfg.Scale, cfg.TPS, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("golbench — " + eng.Name())
	ebiten.SetWindowSize(cfg.N*cfg.Scale, cfg.N*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
