package life

import (
	"errors"
	"slices"
	"testing"

	"gameoflife/pkg/core"
)

var errExhausted = errors.New("sequence exhausted")

// sequenceSource replays a fixed list of indices.
type sequenceSource struct {
	seq []int
	i   int
}

func (s *sequenceSource) Index(n int) (int, error) {
	if s.i >= len(s.seq) {
		return 0, errExhausted
	}
	v := s.seq[s.i] % n
	s.i++
	return v, nil
}

func mustNew(t *testing.T, height, width int) *Life {
	t.Helper()
	l, err := NewWithSource(height, width, core.NewRNG(1))
	if err != nil {
		t.Fatalf("NewWithSource(%d, %d): %v", height, width, err)
	}
	return l
}

func aliveCount(cells []uint8) int {
	n := 0
	for _, c := range cells {
		if c == Alive {
			n++
		}
	}
	return n
}

func TestNewRejectsZeroDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("New(%d, %d) error = %v, expected ErrInvalidSize", dims[0], dims[1], err)
		}
	}
}

func TestNewStartsDead(t *testing.T) {
	l, err := New(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Cells()) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(l.Cells()))
	}
	if aliveCount(l.Cells()) != 0 || l.Sustain() || l.Generation() != 0 {
		t.Fatal("new grid should be all dead with sustain off at generation 0")
	}
	if s := l.Size(); s.W != 4 || s.H != 3 {
		t.Fatalf("unexpected size %+v", s)
	}
}

func TestActivateCountsDistinctCells(t *testing.T) {
	l := mustNew(t, 60, 120)
	if err := l.Activate(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := l.Activate(25, 45); err != nil {
		t.Fatal(err)
	}
	if got := aliveCount(l.Cells()); got != 2 {
		t.Fatalf("expected 2 live cells, got %d", got)
	}

	if err := l.Activate(0, 0); err != nil {
		t.Fatal(err)
	}
	if got := l.Population(); got != 2 {
		t.Fatalf("re-activating a live cell changed the population to %d", got)
	}
	if l.Cells()[l.Index(25, 45)] != Alive {
		t.Fatal("cell (25,45) should be alive")
	}
	if l.Index(25, 45) != 25*120+45 {
		t.Fatalf("Index(25,45) = %d, expected row-major %d", l.Index(25, 45), 25*120+45)
	}
}

func TestActivateOutOfBounds(t *testing.T) {
	l := mustNew(t, 4, 5)
	before := append([]uint8(nil), l.Cells()...)
	for _, rc := range [][2]int{{4, 0}, {0, 5}, {-1, 0}, {0, -1}} {
		if err := l.Activate(rc[0], rc[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Activate(%d,%d) error = %v, expected ErrOutOfBounds", rc[0], rc[1], err)
		}
	}
	if !slices.Equal(before, l.Cells()) {
		t.Fatal("rejected activation modified the grid")
	}
}

// referenceNeighbors counts neighbours with signed coordinates and an
// explicit modulo that is correct for negative values.
func referenceNeighbors(cells []uint8, height, width, row, col int) int {
	mod := func(a, m int) int { return ((a % m) + m) % m }
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n += int(cells[mod(row+dr, height)*width+mod(col+dc, width)])
		}
	}
	return n
}

func TestNeighborCountMatchesSignedReference(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {3, 3}, {4, 7}, {6, 5}, {9, 13}}
	for _, shape := range shapes {
		h, w := shape[0], shape[1]
		for seed := int64(1); seed <= 5; seed++ {
			l := mustNew(t, h, w)
			l.Randomize(seed, 0.5)
			cells := l.Cells()
			for row := 0; row < h; row++ {
				for col := 0; col < w; col++ {
					got := l.liveNeighbors(row, col)
					want := referenceNeighbors(cells, h, w, row, col)
					if got != want {
						t.Fatalf("%dx%d seed %d: neighbours of (%d,%d) = %d, reference %d", h, w, seed, row, col, got, want)
					}
					if got < 0 || got > 8 {
						t.Fatalf("neighbour count %d outside [0,8]", got)
					}
				}
			}
		}
	}
}

func TestCornerNeighborsWrap(t *testing.T) {
	const h, w = 6, 9
	neighbors := [][2]int{
		{h - 1, w - 1}, {h - 1, 0}, {h - 1, 1},
		{0, w - 1}, {0, 1},
		{1, w - 1}, {1, 0}, {1, 1},
	}
	for _, nb := range neighbors {
		l := mustNew(t, h, w)
		if err := l.Activate(nb[0], nb[1]); err != nil {
			t.Fatal(err)
		}
		if got := l.liveNeighbors(0, 0); got != 1 {
			t.Fatalf("with only (%d,%d) alive, (0,0) has %d neighbours, expected 1", nb[0], nb[1], got)
		}
	}

	l := mustNew(t, h, w)
	if err := l.Activate(0, 0); err != nil {
		t.Fatal(err)
	}
	if got := l.liveNeighbors(0, 0); got != 0 {
		t.Fatalf("(0,0) counted itself: %d neighbours", got)
	}
	for _, rc := range [][2]int{{0, 4}, {3, 0}, {h - 1, 0}, {0, w - 1}} {
		l := mustNew(t, h, w)
		if err := l.Activate(rc[0], rc[1]); err != nil {
			t.Fatal(err)
		}
		if got := l.liveNeighbors(rc[0], rc[1]); got != 0 {
			t.Fatalf("border cell (%d,%d) counted itself: %d neighbours", rc[0], rc[1], got)
		}
	}
}

func TestBorderPairDies(t *testing.T) {
	l := mustNew(t, 5, 5)
	if err := l.Activate(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := l.Activate(0, 1); err != nil {
		t.Fatal(err)
	}
	if err := l.Step(); err != nil {
		t.Fatal(err)
	}
	if l.Population() != 0 {
		t.Fatalf("a pair on row 0 has one neighbour each and should die, population %d", l.Population())
	}
}

func TestNextStateTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := Dead
		if n == 2 || n == 3 {
			wantAlive = Alive
		}
		if got := nextState(Alive, n); got != wantAlive {
			t.Fatalf("alive cell with %d neighbours -> %d, expected %d", n, got, wantAlive)
		}
		wantDead := Dead
		if n == 3 {
			wantDead = Alive
		}
		if got := nextState(Dead, n); got != wantDead {
			t.Fatalf("dead cell with %d neighbours -> %d, expected %d", n, got, wantDead)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := mustNew(t, 5, 5)
	set := func(row, col int) {
		if err := life.Activate(row, col); err != nil {
			t.Fatal(err)
		}
	}
	set(1, 2)
	set(2, 2)
	set(3, 2)
	initial := append([]uint8(nil), life.Cells()...)

	if err := life.Step(); err != nil {
		t.Fatal(err)
	}
	cells := life.Cells()

	expects := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := cells[life.Index(row, col)] == Alive
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}

	if err := life.Step(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(initial, life.Cells()) {
		t.Fatal("blinker did not return to its initial phase after two steps")
	}
	if life.Generation() != 2 {
		t.Fatalf("expected generation 2, got %d", life.Generation())
	}
}

func TestBlockStillLife(t *testing.T) {
	l := mustNew(t, 8, 8)
	block, err := LookupPattern("block")
	if err != nil {
		t.Fatal(err)
	}
	l.Place(block, 3, 3)
	initial := append([]uint8(nil), l.Cells()...)
	for i := 0; i < 100; i++ {
		if err := l.Step(); err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(initial, l.Cells()) {
			t.Fatalf("block changed at step %d", i+1)
		}
	}
}

func TestGliderCrossesSeam(t *testing.T) {
	glider, err := LookupPattern("glider")
	if err != nil {
		t.Fatal(err)
	}
	l := mustNew(t, 8, 8)
	l.Place(glider, 6, 6)

	for i := 0; i < 4; i++ {
		if err := l.Step(); err != nil {
			t.Fatal(err)
		}
	}

	want := mustNew(t, 8, 8)
	want.Place(glider, 7, 7)
	if !slices.Equal(want.Cells(), l.Cells()) {
		t.Fatal("glider did not reappear translated by (1,1) after four steps")
	}
	if l.Population() != 5 {
		t.Fatalf("glider population %d, expected 5", l.Population())
	}
}

func TestSustainInjectsSourceIndex(t *testing.T) {
	src := &sequenceSource{seq: []int{5, 17}}
	l, err := NewWithSource(4, 6, src)
	if err != nil {
		t.Fatal(err)
	}
	l.SetSustain(true)

	if err := l.Step(); err != nil {
		t.Fatal(err)
	}
	if l.Population() != 1 || l.Cells()[5] != Alive {
		t.Fatalf("expected only cell 5 alive, population %d", l.Population())
	}

	if err := l.Step(); err != nil {
		t.Fatal(err)
	}
	if l.Population() != 1 || l.Cells()[17] != Alive {
		t.Fatalf("expected only cell 17 alive, population %d", l.Population())
	}
}

func TestSustainOverridesRule(t *testing.T) {
	l, err := NewWithSource(5, 5, &sequenceSource{seq: []int{0}})
	if err != nil {
		t.Fatal(err)
	}
	l.SetSustain(true)
	if err := l.Step(); err != nil {
		t.Fatal(err)
	}
	if l.Cells()[0] != Alive {
		t.Fatal("sustain cell should be alive regardless of the rule")
	}
}

func TestSustainNeverExtinct(t *testing.T) {
	l, err := New(10, 20)
	if err != nil {
		t.Fatal(err)
	}
	l.SetSustain(true)
	for i := 0; i < 100; i++ {
		if err := l.Step(); err != nil {
			t.Fatal(err)
		}
		if l.Population() == 0 {
			t.Fatalf("population reached zero at step %d with sustain on", i+1)
		}
	}
}

func TestSustainOffLeavesEmptyGridEmpty(t *testing.T) {
	l := mustNew(t, 10, 20)
	for i := 0; i < 10; i++ {
		if err := l.Step(); err != nil {
			t.Fatal(err)
		}
	}
	if l.Population() != 0 {
		t.Fatalf("empty grid grew to %d cells without sustain", l.Population())
	}
}

func TestStepSourceFailureKeepsGeneration(t *testing.T) {
	l, err := NewWithSource(5, 5, &sequenceSource{})
	if err != nil {
		t.Fatal(err)
	}
	blinker, _ := LookupPattern("blinker")
	l.Place(blinker, 2, 1)
	before := append([]uint8(nil), l.Cells()...)

	l.SetSustain(true)
	err = l.Step()
	if !errors.Is(err, errExhausted) {
		t.Fatalf("expected source error, got %v", err)
	}
	if !slices.Equal(before, l.Cells()) {
		t.Fatal("failed step exposed a partial generation")
	}
	if l.Generation() != 0 {
		t.Fatalf("failed step advanced generation to %d", l.Generation())
	}

	l.SetSustain(false)
	if err := l.Step(); err != nil {
		t.Fatalf("step without sustain should not touch the source: %v", err)
	}
}

func TestRunsForManyTicks(t *testing.T) {
	universe, err := New(10, 20)
	if err != nil {
		t.Fatal(err)
	}
	universe.Randomize(3, 0.3)
	for i := 0; i < 150; i++ {
		switch i {
		case 20:
			universe.SetSustain(true)
		case 90:
			universe.SetSustain(false)
		}
		if err := universe.Step(); err != nil {
			t.Fatal(err)
		}
		if len(universe.Cells()) != 200 {
			t.Fatalf("buffer length changed to %d", len(universe.Cells()))
		}
	}
	if universe.Generation() != 150 {
		t.Fatalf("expected generation 150, got %d", universe.Generation())
	}
}

func TestToggleAndReset(t *testing.T) {
	l := mustNew(t, 3, 3)
	if err := l.Toggle(1, 1); err != nil {
		t.Fatal(err)
	}
	if l.Cells()[l.Index(1, 1)] != Alive {
		t.Fatal("toggle should revive a dead cell")
	}
	if err := l.Toggle(1, 1); err != nil {
		t.Fatal(err)
	}
	if l.Cells()[l.Index(1, 1)] != Dead {
		t.Fatal("toggle should kill a live cell")
	}
	if err := l.Toggle(3, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}

	l.Randomize(11, 0.5)
	if err := l.Step(); err != nil {
		t.Fatal(err)
	}
	l.Reset(0)
	if l.Population() != 0 || l.Generation() != 0 {
		t.Fatal("Reset should clear the board and the generation count")
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := mustNew(t, 16, 16)
	b := mustNew(t, 16, 16)
	a.Randomize(42, 0.5)
	b.Randomize(42, 0.5)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different soups")
	}
	b.Randomize(43, 0.5)
	if slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("different seeds produced identical soups")
	}
}

func TestRandomizeUsesDensityFill(t *testing.T) {
	l := mustNew(t, 9, 13)
	l.Randomize(42, 0.5)
	want := make([]uint8, 9*13)
	core.FillDensity(core.NewRNG(42).Source(), want, 0.5)
	if !slices.Equal(l.Cells(), want) {
		t.Fatal("density 0.5 should fill like any other density")
	}

	l.SetDensity(0.5)
	l.Reset(0)
	l.Soup(42)
	if !slices.Equal(l.Cells(), want) {
		t.Fatal("Soup should randomize at the configured density")
	}
}

func TestPlaceWraps(t *testing.T) {
	l := mustNew(t, 4, 4)
	blinker, _ := LookupPattern("blinker")
	l.Place(blinker, 3, 3)
	for _, rc := range [][2]int{{3, 3}, {3, 0}, {3, 1}} {
		if l.Cells()[l.Index(rc[0], rc[1])] != Alive {
			t.Fatalf("expected (%d,%d) alive after wrapped placement", rc[0], rc[1])
		}
	}
	if l.Population() != 3 {
		t.Fatalf("expected 3 live cells, got %d", l.Population())
	}
}

func TestLookupPattern(t *testing.T) {
	for _, name := range PatternNames() {
		p, err := LookupPattern(name)
		if err != nil {
			t.Fatal(err)
		}
		if p.Name != name || len(p.Cells) == 0 {
			t.Fatalf("pattern %q is malformed", name)
		}
	}
	if _, err := LookupPattern("spaceship-9000"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
	rows, cols := patterns["lwss"].Bounds()
	if rows != 4 || cols != 5 {
		t.Fatalf("lwss bounds %dx%d, expected 4x5", rows, cols)
	}
}

func TestParametersAndControls(t *testing.T) {
	l := mustNew(t, 6, 7)
	if !l.SetIntParameter("sustain", 1) || !l.Sustain() {
		t.Fatal("sustain control should enable sustain")
	}
	if l.SetIntParameter("speed", 3) {
		t.Fatal("unknown control key should be rejected")
	}
	snap := l.Parameters()
	if p, ok := snap.Lookup("sustain"); !ok || p.Value != "1" {
		t.Fatalf("sustain parameter = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("w"); !ok || p.Value != "7" {
		t.Fatalf("width parameter = %+v, %v", p, ok)
	}
	controls := l.ParameterControls()
	if len(controls) != 2 || controls[1].Key != "density" || controls[1].Type != core.ParamTypeFloat {
		t.Fatalf("unexpected controls %+v", controls)
	}

	if !l.SetFloatParameter("density", 0.4) || l.Density() != 0.4 {
		t.Fatalf("density control should set 0.4, got %v", l.Density())
	}
	if p, ok := l.Parameters().Lookup("density"); !ok || p.Value != "0.4" {
		t.Fatalf("density parameter = %+v, %v", p, ok)
	}
	l.SetFloatParameter("density", 1.7)
	if l.Density() != 1 {
		t.Fatalf("density should clamp to 1, got %v", l.Density())
	}
	l.SetFloatParameter("density", -0.2)
	if l.Density() != 0 {
		t.Fatalf("density should clamp to 0, got %v", l.Density())
	}
	if l.SetFloatParameter("sustain", 1) {
		t.Fatal("sustain is not a float control")
	}
}
