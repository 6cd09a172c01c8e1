//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gameoflife/internal/app"
	"gameoflife/pkg/core"
	_ "gameoflife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg, log.Default())
	size := sim.Size()

	ebiten.SetWindowTitle("Game of Life — " + sim.Name())
	ebiten.SetTPS(max(cfg.TPS, ebiten.DefaultTPS))
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
