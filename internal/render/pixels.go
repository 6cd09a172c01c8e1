package render

import "image/color"

// Colours of the original canvas page.
var (
	AliveColor = color.RGBA{R: 0xfc, G: 0x42, B: 0x7d, A: 0xff}
	DeadColor  = color.RGBA{R: 0x40, G: 0x20, B: 0x10, A: 0xff}
	GridColor  = color.RGBA{R: 0x20, G: 0x10, B: 0x10, A: 0xff}
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// CellAt maps a screen position to the (row, col) of the cell drawn under it
// when each cell occupies scale x scale pixels. ok is false outside the grid.
func CellAt(x, y, scale, w, h int) (row, col int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/scale, x/scale
	if row >= h || col >= w {
		return 0, 0, false
	}
	return row, col, true
}
