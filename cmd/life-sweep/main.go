package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"
)

func main() {
	width := flag.Int("w", 80, "grid width")
	height := flag.Int("h", 40, "grid height")
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	seeds := flag.Int("seeds", 8, "number of consecutive seeds to try")
	firstSeed := flag.Int64("seed", 1, "first seed")
	densities := flag.String("density", "0.2,0.35,0.5", "comma separated soup densities")
	sustain := flag.Bool("sustain", false, "inject one random live cell per generation")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	ds, err := parseDensities(*densities)
	if err != nil {
		log.Fatal(err)
	}

	cfg := sweepConfig{width: *width, height: *height, steps: *steps, sustain: *sustain, workers: *workers}
	scenarios := buildScenarios(*firstSeed, *seeds, ds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d workers, %d steps, sustain=%v)\n",
		len(scenarios), cfg.width, cfg.height, cfg.workers, cfg.steps, cfg.sustain)

	start := time.Now()
	results, err := sweep(ctx, cfg, scenarios)
	if err != nil {
		log.Fatal(err)
	}

	extinct := 0
	for _, res := range results {
		if res.extinctAt > 0 {
			extinct++
		}
		fmt.Printf("%s start=%d peak=%d final=%d extinct=%d stable=%d steps=%d\n",
			res.scenario, res.initialPopulation, res.peakPopulation, res.finalPopulation, res.extinctAt, res.stableAt, res.steps)
	}
	fmt.Printf("\n%d/%d scenarios went extinct (elapsed %s)\n", extinct, len(results), time.Since(start).Round(time.Millisecond))
}
