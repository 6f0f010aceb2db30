package life

import "fmt"

// Next writes the generation that follows src into dst. Every next state is
// computed from src alone; dst must be a distinct grid of the same size.
// Neighbors beyond the edge count as dead.
func Next(dst, src *Grid) error {
	if dst == nil || src == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidConfiguration)
	}
	if dst == src {
		return fmt.Errorf("%w: next generation cannot be written over its source", ErrInvalidOperation)
	}
	if dst.w != src.w || dst.h != src.h {
		return fmt.Errorf("%w: destination %dx%d does not match source %dx%d",
			ErrInvalidConfiguration, dst.w, dst.h, src.w, src.h)
	}
	advance(dst, src)
	return nil
}

func advance(dst, src *Grid) {
	w, h := src.w, src.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			dst.cells[idx] = nextState(src.cells[idx], src.neighbors(y, x))
		}
	}
}

// neighbors counts live cells among the eight surrounding positions.
func (g *Grid) neighbors(row, col int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := row + dy
		if ny < 0 || ny >= g.h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := col + dx
			if nx < 0 || nx >= g.w {
				continue
			}
			n += int(g.cells[ny*g.w+nx])
		}
	}
	return n
}

// nextState applies B3/S23: survive on 2 or 3, birth on exactly 3.
func nextState(c Cell, neighbors int) Cell {
	if neighbors == 3 || (c == Alive && neighbors == 2) {
		return Alive
	}
	return Dead
}
