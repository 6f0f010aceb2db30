// Package session wires an engine to a driver: it applies the configured
// seeding, maps user commands onto engine calls and logs what happens.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lifegame/internal/config"
	"lifegame/internal/logging"
	"lifegame/pkg/life"
)

// Status is a point-in-time summary for status lines and HUDs.
type Status struct {
	Width, Height int
	Generation    uint64
	Population    int
	Running       bool
}

// Session owns one engine. Sessions never share grid state.
type Session struct {
	eng     *life.Engine
	catalog *life.Catalog
	cfg     config.Config
	logger  *slog.Logger
}

// New creates an engine sized by cfg and applies cfg.Pattern. The logger is
// taken from ctx.
func New(ctx context.Context, cfg config.Config, catalog *life.Catalog) (*Session, error) {
	if catalog == nil {
		catalog = life.Builtin()
	}
	eng, err := life.New(cfg.Width, cfg.Height, life.WithSeed(cfg.Seed))
	if err != nil {
		return nil, err
	}
	s := &Session{
		eng:     eng,
		catalog: catalog,
		cfg:     cfg,
		logger:  logging.FromContext(ctx).With("width", cfg.Width, "height", cfg.Height),
	}
	if err := s.seed(cfg.Pattern); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) seed(pattern string) error {
	switch pattern {
	case config.PatternNone:
		return nil
	case config.PatternRandom:
		return s.Randomize()
	case config.PatternNoise:
		return s.RandomizeNoise()
	}
	return s.ApplyPattern(pattern)
}

// Engine exposes the underlying engine.
func (s *Session) Engine() *life.Engine { return s.eng }

// Catalog returns the patterns available to ApplyPattern.
func (s *Session) Catalog() *life.Catalog { return s.catalog }

// Grid returns the live read-only view of the grid.
func (s *Session) Grid() life.Reader { return s.eng.Grid() }

// Config returns the configuration the session was built from.
func (s *Session) Config() config.Config { return s.cfg }

// Status summarizes the current state.
func (s *Session) Status() Status {
	g := s.eng.Grid()
	return Status{
		Width:      g.Width(),
		Height:     g.Height(),
		Generation: s.eng.Generation(),
		Population: g.Population(),
		Running:    s.eng.IsRunning(),
	}
}

func (st Status) String() string {
	state := "paused"
	if st.Running {
		state = "running"
	}
	return fmt.Sprintf("%s  gen %d  pop %d  %dx%d", state, st.Generation, st.Population, st.Width, st.Height)
}

// Start resumes stepping.
func (s *Session) Start() {
	if s.eng.IsRunning() {
		return
	}
	s.eng.Start()
	s.logger.Info("simulation started", "generation", s.eng.Generation())
}

// Pause stops stepping.
func (s *Session) Pause() {
	if !s.eng.IsRunning() {
		return
	}
	s.eng.Pause()
	s.logger.Info("simulation paused", "generation", s.eng.Generation())
}

// TogglePlay switches between running and paused.
func (s *Session) TogglePlay() {
	if s.eng.IsRunning() {
		s.Pause()
		return
	}
	s.Start()
}

// Tick advances one generation if the session is running. Drivers call it at
// the configured interval.
func (s *Session) Tick() bool {
	if !s.eng.IsRunning() {
		return false
	}
	s.eng.Step()
	if s.eng.Grid().Population() == 0 {
		s.logger.Debug("population died out", "generation", s.eng.Generation())
	}
	return true
}

// StepOnce advances exactly one generation regardless of the run state.
func (s *Session) StepOnce() {
	s.eng.Step()
	s.logger.Debug("stepped", "generation", s.eng.Generation())
}

// Clear empties the grid and pauses.
func (s *Session) Clear() {
	s.eng.Clear()
	s.logger.Info("grid cleared")
}

// Randomize pauses and fills the grid with the configured alive probability.
func (s *Session) Randomize() error {
	s.Pause()
	if err := s.eng.Randomize(s.cfg.Probability); err != nil {
		s.logger.Error("randomize failed", "error", err)
		return err
	}
	s.logger.Info("grid randomized", "probability", s.cfg.Probability, "population", s.eng.Grid().Population())
	return nil
}

// RandomizeNoise pauses and fills the grid from a Perlin noise field.
func (s *Session) RandomizeNoise() error {
	s.Pause()
	if err := s.eng.RandomizeNoise(life.DefaultNoise()); err != nil {
		s.logger.Error("noise fill failed", "error", err)
		return err
	}
	s.logger.Info("grid filled from noise", "population", s.eng.Grid().Population())
	return nil
}

// ApplyPattern pauses and stamps the named catalog pattern at the center.
func (s *Session) ApplyPattern(name string) error {
	p, ok := s.catalog.Lookup(name)
	if !ok {
		err := fmt.Errorf("%w: unknown pattern %q", life.ErrInvalidConfiguration, name)
		s.logger.Warn("pattern not found", "pattern", name)
		return err
	}
	return s.apply(p)
}

// ApplyPatternAt applies the i-th catalog pattern.
func (s *Session) ApplyPatternAt(i int) error {
	p, ok := s.catalog.At(i)
	if !ok {
		return fmt.Errorf("%w: no pattern at index %d", life.ErrOutOfBounds, i)
	}
	return s.apply(p)
}

func (s *Session) apply(p life.Pattern) error {
	s.Pause()
	if err := s.eng.ApplyPattern(p); err != nil {
		s.logger.Error("pattern rejected", "pattern", p.Name(), "error", err)
		return err
	}
	s.logger.Info("pattern applied", "pattern", p.Name())
	return nil
}

// ToggleCell flips one cell. Like the engine, it refuses while running.
func (s *Session) ToggleCell(row, col int) error {
	err := s.eng.Toggle(row, col)
	switch {
	case errors.Is(err, life.ErrInvalidOperation):
		s.logger.Debug("toggle ignored while running", "row", row, "col", col)
	case err != nil:
		s.logger.Debug("toggle rejected", "row", row, "col", col, "error", err)
	}
	return err
}
