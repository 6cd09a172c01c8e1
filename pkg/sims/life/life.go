package life

import (
	"errors"
	"fmt"

	"gameoflife/pkg/core"
)

// Cell states. Cells are stored as numbers so neighbour counts are plain sums.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

var (
	// ErrInvalidSize is returned when a grid dimension is below one.
	ErrInvalidSize = errors.New("life: grid dimensions must be at least 1x1")
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("life: coordinates out of bounds")
)

// Life implements Conway's Game of Life with toroidal wrapping.
//
// A Life is owned by a single driver; none of its methods are safe for
// concurrent use.
type Life struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid

	sustain    bool
	src        core.IndexSource
	generation uint64

	// density is the live-cell probability used by Soup.
	density float64
}

// DefaultDensity is the soup density of a new simulation.
const DefaultDensity = 0.25

// New returns an empty height x width simulation that draws sustain cells
// from the operating system's random number generator.
func New(height, width int) (*Life, error) {
	return NewWithSource(height, width, core.OSSource{})
}

// NewWithSource is like New but draws sustain cells from src.
func NewWithSource(height, width int, src core.IndexSource) (*Life, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, height, width)
	}
	if src == nil {
		src = core.OSSource{}
	}
	return &Life{
		cur:     core.NewByteGrid(height, width),
		nxt:     core.NewByteGrid(height, width),
		src:     src,
		density: DefaultDensity,
	}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current generation in row-major order. The slice is
// read-only for callers and only valid until the next Step.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Index maps (row, col) to an offset into Cells. Coordinates are not
// validated.
func (l *Life) Index(row, col int) int { return l.cur.Index(row, col) }

// Activate makes the cell at (row, col) alive.
func (l *Life) Activate(row, col int) error {
	if !l.cur.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, row, col, l.cur.H, l.cur.W)
	}
	l.cur.Cells()[l.cur.Index(row, col)] = Alive
	return nil
}

// Toggle flips the cell at (row, col).
func (l *Life) Toggle(row, col int) error {
	if !l.cur.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, row, col, l.cur.H, l.cur.W)
	}
	idx := l.cur.Index(row, col)
	l.cur.Cells()[idx] ^= Alive
	return nil
}

// SetSustain enables or disables injection of one random live cell per
// generation, starting with the next Step.
func (l *Life) SetSustain(on bool) { l.sustain = on }

// Sustain reports whether random injection is enabled.
func (l *Life) Sustain() bool { return l.sustain }

// Generation returns the number of completed steps since creation or Reset.
func (l *Life) Generation() uint64 { return l.generation }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cur.Count() }

// Reset kills every cell and restarts the generation count. The seed is
// unused; Randomize fills a board from a seed.
func (l *Life) Reset(seed int64) {
	l.cur.Clear()
	l.generation = 0
}

// Randomize replaces the board with a soup where each cell is alive with the
// given probability, drawn from a generator seeded with seed.
func (l *Life) Randomize(seed int64, density float64) {
	core.FillDensity(core.NewRNG(seed).Source(), l.cur.Cells(), density)
	l.generation = 0
}

// Soup is Randomize at the simulation's current density.
func (l *Life) Soup(seed int64) { l.Randomize(seed, l.density) }

// Density returns the live-cell probability used by Soup.
func (l *Life) Density() float64 { return l.density }

// SetDensity changes the density used by Soup, clamped to [0, 1].
func (l *Life) SetDensity(d float64) {
	l.density = min(max(d, 0), 1)
}

// liveNeighbors counts the live cells among the eight surrounding (row, col)
// on the torus. The centre is skipped by offset, never by comparing wrapped
// coordinates, so cells on row 0 or column 0 do not count themselves.
func (l *Life) liveNeighbors(row, col int) int {
	w, h := l.cur.W, l.cur.H
	cells := l.cur.Cells()
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + h) % h
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := (col + dc + w) % w
			n += int(cells[r*w+c])
		}
	}
	return n
}

// nextState applies B3/S23 to a cell with n live neighbours.
func nextState(cell uint8, n int) uint8 {
	if n == 3 || (cell == Alive && n == 2) {
		return Alive
	}
	return Dead
}

// Step advances the simulation by one generation. The next generation is
// computed into a scratch buffer and swapped in only once complete; if the
// random source fails while sustain is on, the error is returned and the
// current generation is left untouched.
func (l *Life) Step() error {
	w, h := l.cur.W, l.cur.H
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			nxt[idx] = nextState(cur[idx], l.liveNeighbors(row, col))
		}
	}
	if l.sustain {
		idx, err := l.src.Index(len(nxt))
		if err != nil {
			return fmt.Errorf("life: sustain cell: %w", err)
		}
		if idx < 0 || idx >= len(nxt) {
			return fmt.Errorf("life: sustain cell: source returned %d for %d cells: %w", idx, len(nxt), ErrOutOfBounds)
		}
		nxt[idx] = Alive
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
	return nil
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
