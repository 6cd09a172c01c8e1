package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Coordinates are (row, col); the backing slice never changes length.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions. Dimensions
// below one are raised to one; callers that must reject them check first.
func NewByteGrid(h, w int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Len is the number of cells in the grid.
func (g *ByteGrid) Len() int { return len(g.data) }

// Index returns the linear slice index for coordinates (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.W + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *ByteGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// Count returns the number of non-zero cells.
func (g *ByteGrid) Count() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
