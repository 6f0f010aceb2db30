package render

import (
	"image/color"

	"lifegame/pkg/life"
)

// Palette holds the colors used to rasterize a grid.
type Palette struct {
	Background color.RGBA
	Lines      color.RGBA
	Alive      color.RGBA
}

// DefaultPalette is white paper, light gray grid lines and blue cells.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Lines:      color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		Alive:      color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
	}
}

// PixelSize returns the image dimensions for a grid drawn at scale.
func PixelSize(g life.Reader, scale int) (int, int) {
	return g.Width() * scale, g.Height() * scale
}

// FillRGBA rasterizes g into buf, which must hold 4*w*h bytes for the
// dimensions returned by PixelSize. At scale 3 and above every cell gets a
// one pixel grid line on its top and left edge and live cells are inset by
// one pixel on each side. Smaller scales draw solid cells without lines.
func FillRGBA(buf []byte, g life.Reader, scale int, pal Palette) bool {
	pw, ph := PixelSize(g, scale)
	if scale <= 0 || len(buf) != 4*pw*ph {
		return false
	}
	lines := scale >= 3
	g.ForEachCell(func(row, col int, c life.Cell) {
		for oy := 0; oy < scale; oy++ {
			base := ((row*scale+oy)*pw + col*scale) * 4
			for ox := 0; ox < scale; ox++ {
				px := pal.Background
				switch {
				case lines && (ox == 0 || oy == 0):
					px = pal.Lines
				case c == life.Alive && (!lines || (ox < scale-1 && oy < scale-1)):
					px = pal.Alive
				}
				i := base + ox*4
				buf[i+0] = px.R
				buf[i+1] = px.G
				buf[i+2] = px.B
				buf[i+3] = px.A
			}
		}
	})
	return true
}

// CellAt maps a pixel position back to the cell under it.
func CellAt(x, y, scale int) (row, col int) {
	if scale <= 0 {
		return -1, -1
	}
	if x < 0 || y < 0 {
		return -1, -1
	}
	return y / scale, x / scale
}
