package life

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Reader is the read-only view of a grid handed to renderers and drivers.
type Reader interface {
	Width() int
	Height() int
	Get(row, col int) (Cell, error)
	All() iter.Seq2[Coord, Cell]
	ForEachCell(fn func(row, col int, c Cell))
	Population() int
}

// Grid stores a fixed rectangle of cells in row-major order.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: grid size %dx%d must be positive", ErrInvalidConfiguration, w, h)
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.h && col >= 0 && col < g.w
}

func (g *Grid) index(row, col int) int { return row*g.w + col }

func (g *Grid) boundsErr(row, col int) error {
	return fmt.Errorf("%w: cell (%d,%d) outside %dx%d grid", ErrOutOfBounds, row, col, g.w, g.h)
}

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Dead, g.boundsErr(row, col)
	}
	return g.cells[g.index(row, col)], nil
}

// Set stores value at (row, col).
func (g *Grid) Set(row, col int, value Cell) error {
	if !g.InBounds(row, col) {
		return g.boundsErr(row, col)
	}
	if value > Alive {
		return fmt.Errorf("%w: cell value %d", ErrInvalidConfiguration, value)
	}
	g.cells[g.index(row, col)] = value
	return nil
}

// All iterates the grid in row-major order. The sequence can be ranged over
// any number of times.
func (g *Grid) All() iter.Seq2[Coord, Cell] {
	return func(yield func(Coord, Cell) bool) {
		for row := 0; row < g.h; row++ {
			for col := 0; col < g.w; col++ {
				if !yield(Coord{Row: row, Col: col}, g.cells[g.index(row, col)]) {
					return
				}
			}
		}
	}
}

// ForEachCell calls fn for every cell in row-major order.
func (g *Grid) ForEachCell(fn func(row, col int, c Cell)) {
	for i, c := range g.cells {
		fn(i/g.w, i%g.w, c)
	}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.w == other.w && g.h == other.h && slices.Equal(g.cells, other.cells)
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, cells: slices.Clone(g.cells)}
}

// Reset kills every cell.
func (g *Grid) Reset() {
	clear(g.cells)
}

// Bytes returns a copy of the cells as 0/1 bytes in row-major order.
func (g *Grid) Bytes() []uint8 {
	out := make([]uint8, len(g.cells))
	for i, c := range g.cells {
		out[i] = uint8(c)
	}
	return out
}

// String renders the grid in plaintext form, 'O' for alive and '.' for dead.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			if g.cells[g.index(row, col)] == Alive {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
