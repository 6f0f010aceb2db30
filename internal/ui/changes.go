package ui

import "lifegame/pkg/life"

// Change describes how a cell differs in the following generation.
type Change uint8

const (
	Unchanged Change = iota
	Birth
	Death
)

// Changes returns the per-cell difference between g and its successor in
// row-major order. g is not modified.
func Changes(g life.Reader) ([]Change, error) {
	cur, err := life.NewGrid(g.Width(), g.Height())
	if err != nil {
		return nil, err
	}
	g.ForEachCell(func(row, col int, c life.Cell) {
		_ = cur.Set(row, col, c)
	})
	next, err := life.NewGrid(g.Width(), g.Height())
	if err != nil {
		return nil, err
	}
	if err := life.Next(next, cur); err != nil {
		return nil, err
	}

	out := make([]Change, g.Width()*g.Height())
	cur.ForEachCell(func(row, col int, c life.Cell) {
		n, _ := next.Get(row, col)
		switch {
		case c == life.Dead && n == life.Alive:
			out[row*g.Width()+col] = Birth
		case c == life.Alive && n == life.Dead:
			out[row*g.Width()+col] = Death
		}
	})
	return out, nil
}
