package main

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"gameoflife/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

type scenario struct {
	seed    int64
	density float64
}

func (s scenario) String() string {
	return fmt.Sprintf("seed=%d density=%.2f", s.seed, s.density)
}

type sweepConfig struct {
	width   int
	height  int
	steps   int
	sustain bool
	workers int
}

type scenarioResult struct {
	scenario scenario

	initialPopulation int
	finalPopulation   int
	peakPopulation    int
	// extinctAt is the first step after which no cell was alive, or 0.
	extinctAt int
	// stableAt is the first step that reproduced the previous generation, or 0.
	stableAt int
	steps    int
}

func runScenario(cfg sweepConfig, sc scenario) (scenarioResult, error) {
	world, err := life.NewWithConfig(life.Config{
		Width:   cfg.width,
		Height:  cfg.height,
		Sustain: cfg.sustain,
		Seed:    sc.seed,
		Density: sc.density,
	})
	if err != nil {
		return scenarioResult{}, fmt.Errorf("%s: %w", sc, err)
	}

	res := scenarioResult{scenario: sc, initialPopulation: world.Population()}
	res.peakPopulation = res.initialPopulation
	prev := make([]uint8, len(world.Cells()))

	for step := 1; step <= cfg.steps; step++ {
		copy(prev, world.Cells())
		if err := world.Step(); err != nil {
			return scenarioResult{}, fmt.Errorf("%s: step %d: %w", sc, step, err)
		}
		res.steps = step

		pop := world.Population()
		if pop > res.peakPopulation {
			res.peakPopulation = pop
		}
		if pop == 0 && res.extinctAt == 0 {
			res.extinctAt = step
		}
		if res.stableAt == 0 && slices.Equal(prev, world.Cells()) {
			res.stableAt = step
			if !cfg.sustain {
				// nothing changes from here on
				break
			}
		}
	}
	res.finalPopulation = world.Population()
	return res, nil
}

// sweep runs every scenario on at most cfg.workers goroutines and returns
// the results ordered by seed, then density.
func sweep(ctx context.Context, cfg sweepConfig, scenarios []scenario) ([]scenarioResult, error) {
	results := make([]scenarioResult, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.workers, 1))
	for i, sc := range scenarios {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := runScenario(cfg, sc)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// skipped scenarios leave zero results behind
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].scenario, results[j].scenario
		if a.seed != b.seed {
			return a.seed < b.seed
		}
		return a.density < b.density
	})
	return results, nil
}

func buildScenarios(firstSeed int64, seeds int, densities []float64) []scenario {
	var out []scenario
	for s := 0; s < seeds; s++ {
		for _, d := range densities {
			out = append(out, scenario{seed: firstSeed + int64(s), density: d})
		}
	}
	return out
}

func parseDensities(v string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("density %q: %w", part, err)
		}
		if d <= 0 || d > 1 {
			return nil, fmt.Errorf("density %v outside (0, 1]", d)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no densities given")
	}
	return out, nil
}
