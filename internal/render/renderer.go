//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	pixel *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// DrawGridLines outlines every cell with one-pixel lines in col. Nothing is
// drawn below a scale of 4 where the lines would hide the cells.
func (gp *GridPainter) DrawGridLines(dst *ebiten.Image, col color.Color, scale int) {
	if scale < 4 {
		return
	}
	width := float64(gp.w * scale)
	height := float64(gp.h * scale)
	for x := 0; x <= gp.w; x++ {
		gp.line(dst, float64(x*scale), 0, 1, height, col)
	}
	for y := 0; y <= gp.h; y++ {
		gp.line(dst, 0, float64(y*scale), width, 1, col)
	}
}

func (gp *GridPainter) line(dst *ebiten.Image, x, y, w, h float64, col color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(gp.pixel, op)
}
