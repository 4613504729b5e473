package life

import "fmt"

// ParsePattern converts text rows into a cell matrix suitable for
// Builder.Grid. '@', 'O', '*' and '#' are live; '.', '_' and ' ' are dead.
// Short rows are padded with dead cells up to the longest row, and the
// result must be square.
func ParsePattern(rows []string) ([][]Cell, error) {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width != len(rows) {
		return nil, fmt.Errorf("pattern is %dx%d: %w", len(rows), width, ErrNotSquare)
	}
	out := make([][]Cell, len(rows))
	for r, row := range rows {
		cells := make([]Cell, width)
		for c := 0; c < len(row); c++ {
			switch row[c] {
			case '@', 'O', '*', '#':
				cells[c] = Live
			case '.', '_', ' ':
			default:
				return nil, fmt.Errorf("pattern row %d col %d: unexpected %q", r, c, row[c])
			}
		}
		out[r] = cells
	}
	return out, nil
}
