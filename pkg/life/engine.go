package life

import (
	"math/rand/v2"
	"strings"
)

// neighborOffsets lists the eight Moore neighbours as (row, col) deltas.
var neighborOffsets = [8][2]int{
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
}

// Engine holds one generation of a square toroidal grid and advances it under
// a Rule. Engines are built with NewBuilder and are not safe for concurrent
// use; callers sharing one must serialize access.
type Engine struct {
	size int
	cur  []Cell
	nxt  []Cell
	rule Rule
	rng  *rand.Rand
}

// wrap maps i onto [0, n) for any sign of i.
func wrap(i, n int) int {
	return (i%n + n) % n
}

// Size returns the side length of the grid.
func (e *Engine) Size() int { return e.size }

// Rule returns the active rule.
func (e *Engine) Rule() Rule { return e.rule }

// SetRule replaces the active rule. It applies from the next Evolve.
func (e *Engine) SetRule(rule Rule) { e.rule = rule }

// Evolve advances the grid by one generation. The next generation is
// computed into a second buffer from the current one and then swapped in.
func (e *Engine) Evolve() {
	n := e.size
	if n == 0 {
		return
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			var neighbors uint8
			for _, off := range neighborOffsets {
				r := wrap(row+off[0], n)
				c := wrap(col+off[1], n)
				if e.cur[r*n+c] == Live {
					neighbors++
				}
			}
			idx := row*n + col
			next := Dead
			switch e.cur[idx] {
			case Dead:
				if e.rule.IsBorn(neighbors) {
					next = Live
				}
			case Live:
				if e.rule.IsSurvivor(neighbors) {
					next = Live
				}
			}
			e.nxt[idx] = next
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
}

// Clear kills every cell.
func (e *Engine) Clear() {
	for i := range e.cur {
		e.cur[i] = Dead
	}
}

// Randomize sets every cell independently to Dead or Live.
func (e *Engine) Randomize() {
	fillRandom(e.rng, e.cur)
}

// Resize changes the side length to newSize, keeping the old content centred.
// Cells that fall outside the new grid are dropped and new cells are dead.
// With an odd size difference the content shifts by the truncated half.
func (e *Engine) Resize(newSize int) {
	if newSize < 0 {
		newSize = 0
	}
	oldSize, old := e.size, e.cur
	offset := (newSize - oldSize) / 2
	grid := make([]Cell, newSize*newSize)
	for row := 0; row < newSize; row++ {
		oldRow := row - offset
		if oldRow < 0 || oldRow >= oldSize {
			continue
		}
		for col := 0; col < newSize; col++ {
			oldCol := col - offset
			if oldCol < 0 || oldCol >= oldSize {
				continue
			}
			grid[row*newSize+col] = old[oldRow*oldSize+oldCol]
		}
	}
	e.size = newSize
	e.cur = grid
	e.nxt = make([]Cell, len(grid))
}

func (e *Engine) inBounds(row, col int) bool {
	return row >= 0 && row < e.size && col >= 0 && col < e.size
}

// Toggle flips the cell at (row, col). Out-of-range coordinates are ignored.
func (e *Engine) Toggle(row, col int) {
	if !e.inBounds(row, col) {
		return
	}
	idx := row*e.size + col
	e.cur[idx] = e.cur[idx].Flip()
}

// Cell returns the cell at (row, col) and whether the coordinates are inside
// the grid.
func (e *Engine) Cell(row, col int) (Cell, bool) {
	if !e.inBounds(row, col) {
		return Dead, false
	}
	return e.cur[row*e.size+col], true
}

// AppendCells appends the current generation in row-major order to dst and
// returns the extended slice.
func (e *Engine) AppendCells(dst []Cell) []Cell {
	return append(dst, e.cur...)
}

// Population returns the number of live cells.
func (e *Engine) Population() int {
	total := 0
	for _, c := range e.cur {
		if c == Live {
			total++
		}
	}
	return total
}

// String draws the grid with '@' for live and ' ' for dead cells, one line
// per row.
func (e *Engine) String() string {
	var b strings.Builder
	b.Grow(e.size * (e.size + 1))
	for row := 0; row < e.size; row++ {
		for _, c := range e.cur[row*e.size : (row+1)*e.size] {
			if c == Live {
				b.WriteByte('@')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
