// Package tui drives a session in a terminal using tcell. Each cell takes two
// columns so the board keeps a roughly square aspect.
package tui

import (
	"context"
	"log/slog"
	"time"

	"lifegame/internal/core"
	"lifegame/internal/session"
	"lifegame/pkg/life"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth = 2
	aliveRune = '█'
	deadRune  = '·'
	helpLine  = "space run/pause  n step  c clear  r random  p noise  1-9 pattern  enter toggle  q quit"
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	cursorStyle = tcell.StyleDefault.Reverse(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Driver renders a session to a tcell screen and maps keys onto commands.
type Driver struct {
	screen tcell.Screen
	sess   *session.Session
	logger *slog.Logger

	interval  time.Duration
	cursorRow int
	cursorCol int
}

// New returns a driver for an initialized screen.
func New(screen tcell.Screen, sess *session.Session, logger *slog.Logger) *Driver {
	interval := sess.Config().Interval
	if interval <= 0 {
		interval = core.DefaultInterval
	}
	g := sess.Grid()
	return &Driver{
		screen:    screen,
		sess:      sess,
		logger:    logger,
		interval:  interval,
		cursorRow: g.Height() / 2,
		cursorCol: g.Width() / 2,
	}
}

// Run processes events and ticks until the user quits or ctx is done. The
// caller owns the screen and must Fini it afterwards.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !d.HandleEvent(ev) {
				return nil
			}
			d.Draw()
		case <-ticker.C:
			if d.sess.Tick() {
				d.Draw()
			}
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return true
}

func (d *Driver) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		d.moveCursor(-1, 0)
	case tcell.KeyDown:
		d.moveCursor(1, 0)
	case tcell.KeyLeft:
		d.moveCursor(0, -1)
	case tcell.KeyRight:
		d.moveCursor(0, 1)
	case tcell.KeyEnter:
		_ = d.sess.ToggleCell(d.cursorRow, d.cursorCol)
	case tcell.KeyRune:
		return d.handleRune(r)
	}
	return true
}

func (d *Driver) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		d.sess.TogglePlay()
	case 'n':
		d.sess.StepOnce()
	case 'c':
		d.sess.Clear()
	case 'r':
		d.report(d.sess.Randomize())
	case 'p':
		d.report(d.sess.RandomizeNoise())
	case 'k':
		d.moveCursor(-1, 0)
	case 'j':
		d.moveCursor(1, 0)
	case 'h':
		d.moveCursor(0, -1)
	case 'l':
		d.moveCursor(0, 1)
	case 't':
		_ = d.sess.ToggleCell(d.cursorRow, d.cursorCol)
	default:
		if r >= '1' && r <= '9' {
			d.report(d.sess.ApplyPatternAt(int(r - '1')))
		}
	}
	return true
}

func (d *Driver) moveCursor(dr, dc int) {
	g := d.sess.Grid()
	d.cursorRow = clamp(d.cursorRow+dr, 0, g.Height()-1)
	d.cursorCol = clamp(d.cursorCol+dc, 0, g.Width()-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (d *Driver) report(err error) {
	if err != nil && d.logger != nil {
		d.logger.Warn("command failed", "error", err)
	}
}

// Cursor returns the cell the cursor is on.
func (d *Driver) Cursor() (row, col int) { return d.cursorRow, d.cursorCol }

// Draw paints the grid, the status line and the key help. Anything that
// does not fit the screen is clipped.
func (d *Driver) Draw() {
	d.screen.Clear()
	sw, sh := d.screen.Size()
	g := d.sess.Grid()
	running := d.sess.Status().Running

	g.ForEachCell(func(row, col int, c life.Cell) {
		x := col * cellWidth
		if row >= sh || x >= sw {
			return
		}
		r, style := deadRune, deadStyle
		if c == life.Alive {
			r, style = aliveRune, aliveStyle
		}
		if !running && row == d.cursorRow && col == d.cursorCol {
			style = cursorStyle
		}
		for i := 0; i < cellWidth && x+i < sw; i++ {
			d.screen.SetContent(x+i, row, r, nil, style)
		}
	})

	d.drawText(0, g.Height(), d.sess.Status().String(), statusStyle)
	d.drawText(0, g.Height()+1, helpLine, helpStyle)
	d.screen.Show()
}

func (d *Driver) drawText(x, y int, s string, style tcell.Style) {
	sw, sh := d.screen.Size()
	if y >= sh {
		return
	}
	for _, r := range s {
		if x >= sw {
			return
		}
		d.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
