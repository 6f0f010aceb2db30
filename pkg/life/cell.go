package life

// Cell is the binary state of one grid position. Alive counts as 1 and Dead
// as 0 when neighbors are summed.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// Toggle returns the opposite state.
func (c Cell) Toggle() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}
