//go:build ebiten

package app

import (
	"log/slog"

	"lifegame/internal/core"
	"lifegame/internal/render"
	"lifegame/internal/session"
	"lifegame/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PanelWidth is the width of the HUD column beside the grid.
const PanelWidth = 180

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	stepper *core.FixedStep
	logger  *slog.Logger

	scale       int
	wasRunning  bool
	patternKeys []ebiten.Key
}

// New constructs a Game for the provided session.
func New(sess *session.Session, logger *slog.Logger) *Game {
	cfg := sess.Config()
	g := sess.Grid()
	return &Game{
		sess:    sess,
		painter: render.NewGridPainter(g.Width(), g.Height(), cfg.Scale, render.DefaultPalette()),
		hud:     ui.NewHUD(sess, PanelWidth),
		overlay: ui.NewOverlay(cfg.Scale),
		stepper: core.NewFixedStep(cfg.Interval),
		logger:  logger,
		scale:   cfg.Scale,
		patternKeys: []ebiten.Key{
			ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
			ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
		},
	}
}

// Update handles per-frame input and advances the simulation on schedule.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sess.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.sess.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sess.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.report(g.sess.Randomize())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.report(g.sess.RandomizeNoise())
	}
	for i, key := range g.patternKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.report(g.sess.ApplyPatternAt(i))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.CursorPosition())
	}

	gridW, _ := render.PixelSize(g.sess.Grid(), g.scale)
	g.hud.Update(gridW)
	g.overlay.Update()

	running := g.sess.Status().Running
	if running && !g.wasRunning {
		g.stepper.Reset()
	}
	g.wasRunning = running
	if running && g.stepper.ShouldStep() {
		g.sess.Tick()
	}
	return nil
}

// handleClick toggles the cell under the cursor. Clicks are ignored while
// the simulation runs.
func (g *Game) handleClick(x, y int) {
	row, col := render.CellAt(x, y, g.scale)
	grid := g.sess.Grid()
	if row < 0 || col < 0 || row >= grid.Height() || col >= grid.Width() {
		return
	}
	_ = g.sess.ToggleCell(row, col)
}

func (g *Game) report(err error) {
	if err != nil {
		g.logger.Warn("command failed", "error", err)
	}
}

// Draw renders the grid and the side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sess.Grid())
	g.overlay.Draw(screen, g.sess.Grid())
	w, h := render.PixelSize(g.sess.Grid(), g.scale)
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := render.PixelSize(g.sess.Grid(), g.scale)
	return w + g.hud.Width(), h
}
