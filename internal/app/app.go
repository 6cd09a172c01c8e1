//go:build ebiten

package app

import (
	"fmt"
	"log"
	"time"

	"gameoflife/internal/render"
	"gameoflife/internal/ui"
	"gameoflife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	minTPS = 1
	maxTPS = 240
)

type activator interface {
	Activate(row, col int) error
}

type sustainer interface {
	Sustain() bool
	SetSustain(on bool)
}

type souper interface {
	Soup(seed int64)
	Density() float64
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	stepper *core.FixedStep
	logger  *log.Logger

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The board starts
// paused, like the original page, unless it already holds live cells.
func New(sim core.Sim, cfg *Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	c := *cfg
	c.Normalize()
	cfg = &c
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		stepper:  core.NewFixedStep(cfg.TPS),
		logger:   logger,
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		paused:   !anyAlive(sim.Cells()),
		seed:     cfg.Seed,
	}
}

func anyAlive(cells []uint8) bool {
	for _, c := range cells {
		if c != 0 {
			return true
		}
	}
	return false
}

// Reset clears the board and pauses.
func (g *Game) Reset() {
	g.sim.Reset(g.seed)
	g.paused = true
	g.tickOnce = false
	g.logger.Printf("%s: reset", g.sim.Name())
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.soup(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.toggleSustain()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustTPS(2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustTPS(-2)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.activateUnderCursor()
	}

	size := g.sim.Size()
	g.hud.Update(size.W * g.scale)

	step := g.tickOnce
	if !g.paused && g.stepper.ShouldStep() {
		step = true
	}
	if step {
		g.tickOnce = false
		if err := g.sim.Step(); err != nil {
			return fmt.Errorf("%s: step: %w", g.sim.Name(), err)
		}
	}

	state := "running"
	if g.paused {
		state = "paused"
	}
	g.hud.SetStatus(fmt.Sprintf("TPS: %d", g.stepper.TPS()), "State: "+state)
	return nil
}

func (g *Game) activateUnderCursor() {
	a, ok := g.sim.(activator)
	if !ok {
		return
	}
	size := g.sim.Size()
	x, y := ebiten.CursorPosition()
	row, col, inside := render.CellAt(x, y, g.scale, size.W, size.H)
	if !inside {
		return
	}
	if err := a.Activate(row, col); err != nil {
		g.logger.Printf("%s: activate: %v", g.sim.Name(), err)
	}
}

func (g *Game) toggleSustain() {
	s, ok := g.sim.(sustainer)
	if !ok {
		return
	}
	s.SetSustain(!s.Sustain())
	g.logger.Printf("%s: sustain %v", g.sim.Name(), s.Sustain())
}

func (g *Game) soup(seed int64) {
	s, ok := g.sim.(souper)
	if !ok {
		return
	}
	g.seed = seed
	s.Soup(seed)
	g.logger.Printf("%s: random soup seed=%d density=%.2f", g.sim.Name(), seed, s.Density())
}

func (g *Game) adjustTPS(delta int) {
	tps := g.stepper.TPS() + delta
	if tps < minTPS {
		tps = minTPS
	}
	if tps > maxTPS {
		tps = maxTPS
	}
	g.stepper.SetTPS(tps)
	if tps > ebiten.TPS() {
		ebiten.SetTPS(tps)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), render.AliveColor, render.DeadColor, g.scale)
	g.painter.DrawGridLines(screen, render.GridColor, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
