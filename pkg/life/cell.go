// Package life implements a square, toroidally wrapped cellular automaton
// driven by a birth/survival rule (Conway's Life and its B/S variants).
package life

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead marks an empty cell.
	Dead Cell = iota
	// Live marks an occupied cell.
	Live
)

// Alive reports whether the cell is live.
func (c Cell) Alive() bool { return c == Live }

// Flip returns the opposite state.
func (c Cell) Flip() Cell {
	if c == Live {
		return Dead
	}
	return Live
}

func (c Cell) String() string {
	if c == Live {
		return "Live"
	}
	return "Dead"
}
