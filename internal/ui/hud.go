//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"lifegame/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the control panel to the right of the grid.
type HUD struct {
	sess       *session.Session
	width      int
	panel      *ebiten.Image
	lastHeight int
	buttons    []Button

	panelOffsetX int
	pixel        *ebiten.Image
	lastErr      string
}

// NewHUD constructs a HUD for the provided session and panel width.
func NewHUD(sess *session.Session, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sess: sess, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update lays out the buttons for the current state and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.buttons = Layout(h.width, h.sess.Status().Running, h.sess.Catalog().Names())
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	b, ok := Hit(h.buttons, mx-h.panelOffsetX, my)
	if !ok {
		return
	}
	h.lastErr = ""
	if err := Perform(h.sess, b); err != nil {
		h.lastErr = err.Error()
	}
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff})

	face := basicfont.Face7x13
	ink := color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	for i, line := range StatusLines(h.sess.Status()) {
		text.Draw(h.panel, line, face, panelPadding, panelPadding+(i+1)*lineHeight-4, ink)
	}
	if y := PatternsHeaderY(h.buttons); y > 0 {
		text.Draw(h.panel, "Patterns", face, panelPadding, y, ink)
	}
	for _, b := range h.buttons {
		h.drawButton(b.Rect, b.Label, b.Action == ActionTogglePlay)
	}
	if h.lastErr != "" {
		text.Draw(h.panel, h.lastErr, face, panelPadding, height-panelPadding, color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, primary bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	fg := color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
	if primary {
		bg = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
		fg = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	border := rect.Inset(-1)
	h.fillRect(border, color.RGBA{R: 0xd1, G: 0xd5, B: 0xdb, A: 0xff})
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + 8
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, float64(c.A)/255.0)
	h.panel.DrawImage(h.pixel, op)
}
