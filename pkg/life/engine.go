package life

import (
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
	"time"

	"lifegame/pkg/core"
)

// Engine owns a grid and advances it one generation per Step. It never
// schedules itself; drivers call Step at whatever cadence they like.
//
// An Engine is not safe for concurrent use. Give each session its own.
type Engine struct {
	cur, next  *Grid
	running    bool
	generation uint64
	rng        *core.RNG
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSeed makes Randomize and RandomizeNoise reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = core.NewRNG(seed) }
}

// WithRand supplies the random source used for seeding operations.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = core.FromRand(r) }
}

// New returns a paused engine with an all-dead grid of the given size.
func New(width, height int, opts ...Option) (*Engine, error) {
	cur, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	next, _ := NewGrid(width, height)
	e := &Engine{cur: cur, next: next}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = core.NewRNG(time.Now().UnixNano())
	}
	return e, nil
}

// Grid returns a read-only view that always reflects the current generation.
func (e *Engine) Grid() Reader { return view{e: e} }

// Snapshot returns an independent copy of the current generation.
func (e *Engine) Snapshot() *Grid { return e.cur.Clone() }

// IsRunning reports the advisory run flag.
func (e *Engine) IsRunning() bool { return e.running }

// Generation counts steps since the grid was last seeded or cleared.
func (e *Engine) Generation() uint64 { return e.generation }

// Start marks the simulation as running.
func (e *Engine) Start() { e.running = true }

// Pause marks the simulation as paused.
func (e *Engine) Pause() { e.running = false }

// Step replaces the grid with its next generation.
func (e *Engine) Step() {
	advance(e.next, e.cur)
	e.cur, e.next = e.next, e.cur
	e.generation++
}

// StepN calls Step n times.
func (e *Engine) StepN(n int) {
	for i := 0; i < n; i++ {
		e.Step()
	}
}

// Clear kills every cell and pauses. It is allowed in any state.
func (e *Engine) Clear() {
	e.running = false
	e.cur.Reset()
	e.generation = 0
}

// Toggle flips the cell at (row, col).
func (e *Engine) Toggle(row, col int) error {
	if err := e.editable("toggle"); err != nil {
		return err
	}
	c, err := e.cur.Get(row, col)
	if err != nil {
		return err
	}
	e.cur.cells[e.cur.index(row, col)] = c.Toggle()
	return nil
}

// Randomize sets every cell alive independently with probability p.
func (e *Engine) Randomize(p float64) error {
	if err := e.editable("randomize"); err != nil {
		return err
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: alive probability %v outside [0,1]", ErrInvalidConfiguration, p)
	}
	for i := range e.next.cells {
		if e.rng.Chance(p) {
			e.next.cells[i] = Alive
		} else {
			e.next.cells[i] = Dead
		}
	}
	e.commit()
	return nil
}

// ApplyPattern clears the grid and stamps p centered on it. The top-left
// corner lands at floor(height/2 - p.Height()/2), floor(width/2 - p.Width()/2).
func (e *Engine) ApplyPattern(p Pattern) error {
	if err := e.editable("apply pattern"); err != nil {
		return err
	}
	if p.empty() {
		return fmt.Errorf("%w: empty pattern", ErrInvalidConfiguration)
	}
	w, h := e.cur.w, e.cur.h
	top := int(math.Floor(float64(h)/2 - float64(p.h)/2))
	left := int(math.Floor(float64(w)/2 - float64(p.w)/2))
	if top < 0 || left < 0 || top+p.h > h || left+p.w > w {
		return fmt.Errorf("%w: pattern %q (%dx%d) does not fit %dx%d grid",
			ErrOutOfBounds, p.name, p.w, p.h, w, h)
	}
	e.next.Reset()
	for row := 0; row < p.h; row++ {
		copy(e.next.cells[e.next.index(top+row, left):], p.cells[row*p.w:(row+1)*p.w])
	}
	e.commit()
	return nil
}

// commit publishes the spare buffer as the new current grid.
func (e *Engine) commit() {
	e.cur, e.next = e.next, e.cur
	e.generation = 0
}

func (e *Engine) editable(op string) error {
	if e.running {
		return fmt.Errorf("%w: cannot %s while running", ErrInvalidOperation, op)
	}
	return nil
}

// view reads through to whichever buffer is current.
type view struct {
	e *Engine
}

func (v view) Width() int                                { return v.e.cur.Width() }
func (v view) Height() int                               { return v.e.cur.Height() }
func (v view) Get(row, col int) (Cell, error)            { return v.e.cur.Get(row, col) }
func (v view) ForEachCell(fn func(row, col int, c Cell)) { v.e.cur.ForEachCell(fn) }
func (v view) Population() int                           { return v.e.cur.Population() }

func (v view) All() iter.Seq2[Coord, Cell] { return v.e.cur.All() }
