package life

import (
	"fmt"
	"slices"
	"strings"
)

// Pattern is an immutable named rectangle of cells.
type Pattern struct {
	name  string
	w, h  int
	cells []Cell
}

// NewPattern builds a pattern from rows of cells. Rows must be non-empty and
// of equal length.
func NewPattern(name string, rows [][]Cell) (Pattern, error) {
	if strings.TrimSpace(name) == "" {
		return Pattern{}, fmt.Errorf("%w: pattern name is empty", ErrInvalidConfiguration)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Pattern{}, fmt.Errorf("%w: pattern %q has no cells", ErrInvalidConfiguration, name)
	}
	w := len(rows[0])
	cells := make([]Cell, 0, w*len(rows))
	for i, row := range rows {
		if len(row) != w {
			return Pattern{}, fmt.Errorf("%w: pattern %q row %d has %d cells, want %d",
				ErrInvalidConfiguration, name, i, len(row), w)
		}
		for j, c := range row {
			if c > Alive {
				return Pattern{}, fmt.Errorf("%w: pattern %q cell (%d,%d) has value %d",
					ErrInvalidConfiguration, name, i, j, c)
			}
		}
		cells = append(cells, row...)
	}
	return Pattern{name: name, w: w, h: len(rows), cells: cells}, nil
}

// ParsePattern reads the plaintext form: one string per row, 'O', '*', '#'
// or '1' for alive and '.', '0' or ' ' for dead.
func ParsePattern(name string, lines []string) (Pattern, error) {
	rows := make([][]Cell, 0, len(lines))
	for i, line := range lines {
		row := make([]Cell, 0, len(line))
		for _, r := range line {
			switch r {
			case 'O', 'o', '*', '#', '1':
				row = append(row, Alive)
			case '.', '0', ' ':
				row = append(row, Dead)
			default:
				return Pattern{}, fmt.Errorf("%w: pattern %q row %d has unknown cell %q",
					ErrInvalidConfiguration, name, i, r)
			}
		}
		rows = append(rows, row)
	}
	return NewPattern(name, rows)
}

func mustParse(name string, lines ...string) Pattern {
	p, err := ParsePattern(name, lines)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the display name.
func (p Pattern) Name() string { return p.name }

// Width returns the number of columns.
func (p Pattern) Width() int { return p.w }

// Height returns the number of rows.
func (p Pattern) Height() int { return p.h }

// At returns the cell at (row, col) of the pattern.
func (p Pattern) At(row, col int) (Cell, error) {
	if row < 0 || row >= p.h || col < 0 || col >= p.w {
		return Dead, fmt.Errorf("%w: (%d,%d) outside %dx%d pattern %q", ErrOutOfBounds, row, col, p.w, p.h, p.name)
	}
	return p.cells[row*p.w+col], nil
}

// Population counts the live cells of the pattern.
func (p Pattern) Population() int {
	n := 0
	for _, c := range p.cells {
		n += int(c)
	}
	return n
}

// Rows returns a copy of the cells, one slice per row.
func (p Pattern) Rows() [][]Cell {
	rows := make([][]Cell, p.h)
	for i := range rows {
		rows[i] = slices.Clone(p.cells[i*p.w : (i+1)*p.w])
	}
	return rows
}

// String renders the pattern in plaintext form.
func (p Pattern) String() string {
	var b strings.Builder
	for i, c := range p.cells {
		if c == Alive {
			b.WriteByte('O')
		} else {
			b.WriteByte('.')
		}
		if (i+1)%p.w == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (p Pattern) empty() bool { return p.w == 0 || p.h == 0 }
