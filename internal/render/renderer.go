//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"lifegame/pkg/life"
)

// GridPainter keeps one RGBA image in sync with a grid.
type GridPainter struct {
	scale int
	pal   Palette
	img   *ebiten.Image
	buf   []byte
}

// NewGridPainter allocates a painter for a w*h grid drawn at scale.
func NewGridPainter(w, h, scale int, pal Palette) *GridPainter {
	gp := &GridPainter{scale: scale, pal: pal, buf: make([]byte, 4*w*scale*h*scale)}
	gp.img = ebiten.NewImage(w*scale, h*scale)
	return gp
}

// Blit uploads the grid into the painter image and draws it at the origin.
func (gp *GridPainter) Blit(dst *ebiten.Image, g life.Reader) {
	if !FillRGBA(gp.buf, g, gp.scale, gp.pal) {
		return
	}
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) {
	b := gp.img.Bounds()
	return b.Dx(), b.Dy()
}
