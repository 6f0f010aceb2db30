package life

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func step(t *testing.T, g *Grid) *Grid {
	t.Helper()
	next, err := NewGrid(g.Width(), g.Height())
	if err != nil {
		t.Fatal(err)
	}
	if err := Next(next, g); err != nil {
		t.Fatal(err)
	}
	return next
}

func TestNextRejectsBadBuffers(t *testing.T) {
	g, _ := NewGrid(3, 3)
	if err := Next(g, g); !errors.Is(err, ErrInvalidOperation) {
		t.Fatalf("aliased Next err=%v", err)
	}
	other, _ := NewGrid(4, 3)
	if err := Next(other, g); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("mismatched Next err=%v", err)
	}
	if err := Next(nil, g); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("nil Next err=%v", err)
	}
}

func TestNextTransitions(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "block is still",
			in:   []string{"....", ".OO.", ".OO.", "...."},
			want: []string{"....", ".OO.", ".OO.", "...."},
		},
		{
			name: "blinker turns vertical",
			in:   []string{".....", ".....", ".OOO.", ".....", "....."},
			want: []string{".....", "..O..", "..O..", "..O..", "....."},
		},
		{
			name: "lonely cell dies",
			in:   []string{"...", ".O.", "..."},
			want: []string{"...", "...", "..."},
		},
		{
			name: "overcrowded center dies",
			in:   []string{"OOO", "OOO", "OOO"},
			want: []string{"O.O", "...", "O.O"},
		},
		{
			name: "corner birth with three in-bounds neighbors",
			in:   []string{".O..", "OO..", "....", "...."},
			want: []string{"OO..", "OO..", "....", "...."},
		},
		{
			name: "edges do not wrap",
			in:   []string{"...O", "...O", "...O", "...."},
			want: []string{"....", "..OO", "....", "...."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := step(t, gridOf(t, tt.in...))
			want := gridOf(t, tt.want...)
			if diff := cmp.Diff(want.String(), got.String()); diff != "" {
				t.Fatalf("next generation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlinkerPeriodTwo(t *testing.T) {
	start := gridOf(t, ".....", ".....", ".OOO.", ".....", ".....")
	g := step(t, step(t, start))
	if !g.Equal(start) {
		t.Fatalf("blinker did not return after two steps:\n%s", g)
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	start := gridOf(t,
		"..........",
		"..O.......",
		"...O......",
		".OOO......",
		"..........",
		"..........",
		"..........",
		"..........",
	)
	want := gridOf(t,
		"..........",
		"..........",
		"...O......",
		"....O.....",
		"..OOO.....",
		"..........",
		"..........",
		"..........",
	)
	g := start
	for i := 0; i < 4; i++ {
		g = step(t, g)
	}
	if diff := cmp.Diff(want.String(), g.String()); diff != "" {
		t.Fatalf("glider after 4 steps (-want +got):\n%s", diff)
	}
	if g.Population() != 5 {
		t.Fatalf("population = %d, want 5", g.Population())
	}
}

func TestNextIsDeterministic(t *testing.T) {
	src := gridOf(t,
		"O.OO.O",
		".OO..O",
		"O..OO.",
		"OO.O.O",
	)
	before := src.Clone()
	a := step(t, src)
	b := step(t, src)
	if !a.Equal(b) {
		t.Fatal("same input produced different generations")
	}
	if !src.Equal(before) {
		t.Fatal("Next must not modify its source")
	}
}

func TestNextState(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := nextState(Alive, n) == Alive; got != wantAlive {
			t.Errorf("alive with %d neighbors survives=%v", n, got)
		}
		wantBorn := n == 3
		if got := nextState(Dead, n) == Alive; got != wantBorn {
			t.Errorf("dead with %d neighbors born=%v", n, got)
		}
	}
}
