package life

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPattern is returned by LookupPattern for names it does not know.
var ErrUnknownPattern = errors.New("life: unknown pattern")

// Pattern is a set of live cells given as (row, col) offsets from its origin.
type Pattern struct {
	Name  string
	Cells [][2]int
}

// Bounds returns the number of rows and columns the pattern spans.
func (p Pattern) Bounds() (rows, cols int) {
	for _, c := range p.Cells {
		if c[0]+1 > rows {
			rows = c[0] + 1
		}
		if c[1]+1 > cols {
			cols = c[1] + 1
		}
	}
	return rows, cols
}

var patterns = map[string]Pattern{
	"block": {Name: "block", Cells: [][2]int{
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
	}},
	"blinker": {Name: "blinker", Cells: [][2]int{
		{0, 0}, {0, 1}, {0, 2},
	}},
	"glider": {Name: "glider", Cells: [][2]int{
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}},
	"r-pentomino": {Name: "r-pentomino", Cells: [][2]int{
		{0, 1}, {0, 2},
		{1, 0}, {1, 1},
		{2, 1},
	}},
	"lwss": {Name: "lwss", Cells: [][2]int{
		{0, 1}, {0, 4},
		{1, 0},
		{2, 0}, {2, 4},
		{3, 0}, {3, 1}, {3, 2}, {3, 3},
	}},
	"acorn": {Name: "acorn", Cells: [][2]int{
		{0, 1},
		{1, 3},
		{2, 0}, {2, 1}, {2, 4}, {2, 5}, {2, 6},
	}},
}

// LookupPattern returns the built-in pattern called name.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// PatternNames lists the built-in patterns in alphabetical order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Place activates p with its origin at (row, col). Cells that fall off an
// edge wrap onto the opposite one.
func (l *Life) Place(p Pattern, row, col int) {
	cells := l.cur.Cells()
	for _, c := range p.Cells {
		r, cc := l.cur.Wrap(row+c[0], col+c[1])
		cells[l.cur.Index(r, cc)] = Alive
	}
}

// PlaceCentered activates p in the middle of the board.
func (l *Life) PlaceCentered(p Pattern) {
	rows, cols := p.Bounds()
	l.Place(p, (l.cur.H-rows)/2, (l.cur.W-cols)/2)
}
