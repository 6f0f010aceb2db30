//go:build ebiten

package ui

import (
	"image/color"

	"lifegame/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Premultiplied, as WritePixels expects.
var (
	birthTint = color.RGBA{R: 0x13, G: 0x6f, B: 0x35, A: 0x90}
	deathTint = color.RGBA{R: 0x87, G: 0x26, B: 0x26, A: 0x90}
)

// Overlay tints the cells that will be born or die in the next generation.
// It is toggled with the O key.
type Overlay struct {
	scale   int
	show    bool
	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a hidden overlay for the given cell scale.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{scale: scale}
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.show = !o.show
	}
}

// Draw renders the change preview for g onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, g life.Reader) {
	if !o.show {
		return
	}
	w, h := g.Width(), g.Height()
	if w <= 0 || h <= 0 {
		return
	}
	changes, err := Changes(g)
	if err != nil {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != w || o.maskImg.Bounds().Dy() != h {
		o.maskImg = ebiten.NewImage(w, h)
		o.maskBuf = make([]byte, 4*w*h)
	}
	for i, c := range changes {
		var tint color.RGBA
		switch c {
		case Birth:
			tint = birthTint
		case Death:
			tint = deathTint
		}
		base := i * 4
		o.maskBuf[base+0] = tint.R
		o.maskBuf[base+1] = tint.G
		o.maskBuf[base+2] = tint.B
		o.maskBuf[base+3] = tint.A
	}
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}
