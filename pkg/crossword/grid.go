package crossword

import "fmt"

// Grid is the row-major fill state: single uppercase letters or "" per cell.
type Grid [][]string

func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]string, cols)
	}
	return g
}

func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = make([]string, len(g[r]))
		copy(out[r], g[r])
	}
	return out
}

// ValidateShape checks the grid against the puzzle's declared dimensions.
func (g Grid) ValidateShape(rows, cols int) error {
	if len(g) != rows {
		return fmt.Errorf("grid has %d rows, want %d", len(g), rows)
	}
	for r, row := range g {
		if len(row) != cols {
			return fmt.Errorf("grid row %d has %d cols, want %d", r, len(row), cols)
		}
	}
	return nil
}
