package life

import (
	"errors"
	"slices"
	"testing"
)

func TestNewPatternRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name  string
		pname string
		rows  [][]Cell
	}{
		{"no rows", "x", nil},
		{"empty row", "x", [][]Cell{{}}},
		{"ragged", "x", [][]Cell{{Alive, Dead}, {Alive}}},
		{"bad value", "x", [][]Cell{{Alive, Cell(2)}}},
		{"blank name", "  ", [][]Cell{{Alive}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPattern(tt.pname, tt.rows); !errors.Is(err, ErrInvalidConfiguration) {
				t.Fatalf("err=%v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("mixed", []string{"O*#1", ".0 o"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Width() != 4 || p.Height() != 2 {
		t.Fatalf("size = %dx%d", p.Width(), p.Height())
	}
	if p.Population() != 5 {
		t.Fatalf("population = %d, want 5", p.Population())
	}
	if got := p.String(); got != "OOOO\n...O\n" {
		t.Fatalf("String = %q", got)
	}
	if _, err := ParsePattern("bad", []string{"OxO"}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("unknown rune err=%v", err)
	}
	if _, err := ParsePattern("ragged", []string{"OO", "O"}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("ragged err=%v", err)
	}
}

func TestPatternRowsAreCopies(t *testing.T) {
	rows := Glider.Rows()
	rows[0][0] = Alive
	if Glider.Rows()[0][0] != Dead {
		t.Fatal("Rows must not expose pattern storage")
	}
}

func TestBuiltinPatterns(t *testing.T) {
	tests := []struct {
		p          Pattern
		w, h, live int
	}{
		{Glider, 3, 3, 5},
		{Block, 2, 2, 4},
		{Blinker, 1, 3, 3},
		{Galaxy, 9, 9, 48},
		{Spaceship, 5, 4, 9},
	}
	for _, tt := range tests {
		if tt.p.Width() != tt.w || tt.p.Height() != tt.h {
			t.Errorf("%s size = %dx%d, want %dx%d", tt.p.Name(), tt.p.Width(), tt.p.Height(), tt.w, tt.h)
		}
		if tt.p.Population() != tt.live {
			t.Errorf("%s population = %d, want %d", tt.p.Name(), tt.p.Population(), tt.live)
		}
	}
}

func TestCatalog(t *testing.T) {
	c := Builtin()
	want := []string{"Glider", "Block", "Blinker", "Galaxy", "Spaceship"}
	if !slices.Equal(c.Names(), want) {
		t.Fatalf("Names = %v, want %v", c.Names(), want)
	}
	if c.Len() != 5 || len(c.Patterns()) != 5 {
		t.Fatalf("Len = %d", c.Len())
	}
	p, ok := c.Lookup(" GLIDER ")
	if !ok || p.Name() != "Glider" {
		t.Fatalf("Lookup = %v, %v", p.Name(), ok)
	}
	if _, ok := c.Lookup("pulsar"); ok {
		t.Fatal("unexpected pattern")
	}
	if p, ok := c.At(4); !ok || p.Name() != "Spaceship" {
		t.Fatalf("At(4) = %v, %v", p.Name(), ok)
	}
	if _, ok := c.At(5); ok {
		t.Fatal("At past end must fail")
	}

	dup, _ := ParsePattern("block", []string{"O"})
	if err := c.Add(dup); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("duplicate Add err=%v", err)
	}
	if err := c.Add(Pattern{}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("empty Add err=%v", err)
	}
	tub, _ := ParsePattern("Tub", []string{".O.", "O.O", ".O."})
	if err := c.Add(tub); err != nil {
		t.Fatal(err)
	}
	if c.Names()[5] != "Tub" {
		t.Fatalf("Add must append, got %v", c.Names())
	}
	if Builtin().Len() != 5 {
		t.Fatal("Builtin must return a fresh catalog")
	}
}

func TestPatternAt(t *testing.T) {
	c, err := Glider.At(0, 1)
	if err != nil || c != Alive {
		t.Fatalf("Glider.At(0,1) = %v, %v", c, err)
	}
	c, err = Glider.At(0, 0)
	if err != nil || c != Dead {
		t.Fatalf("Glider.At(0,0) = %v, %v", c, err)
	}
	if _, err := Glider.At(3, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Glider.At(3,0) err = %v", err)
	}
}
