package crossword

import "strings"

// State is the local single-user view of a grid under keyboard navigation.
// It is pure data: every transition goes through Apply.
type State struct {
	Grid      Grid
	Active    *Cell
	Direction Direction
}

func NewState(layout *Layout) State {
	return State{
		Grid:      NewGrid(layout.Rows, layout.Cols),
		Direction: Across,
	}
}

// Event is one input to the state machine: a local keystroke or click, or a
// remote edit relayed over the wire.
type Event interface {
	isEvent()
}

// TypeLetter writes a character into the active cell and advances the cursor.
type TypeLetter struct {
	Letter rune
}

// Erase clears the active cell and steps the cursor back one (Backspace/Delete).
type Erase struct{}

// ToggleDirection flips across/down without moving the cursor (Space/Tab).
type ToggleDirection struct{}

// MoveCursor is an arrow key: a unit step in some direction.
type MoveCursor struct {
	DRow, DCol int
}

// ClickCell is a pointer selection of a cell.
type ClickCell struct {
	Row, Col int
}

// RemoteCell applies one collaborator edit into the grid.
type RemoteCell struct {
	Row, Col int
	Value    string
}

// RemoteGrid replaces the whole grid with the authoritative server snapshot.
type RemoteGrid struct {
	Grid Grid
}

func (TypeLetter) isEvent()      {}
func (Erase) isEvent()           {}
func (ToggleDirection) isEvent() {}
func (MoveCursor) isEvent()      {}
func (ClickCell) isEvent()       {}
func (RemoteCell) isEvent()      {}
func (RemoteGrid) isEvent()      {}

// Apply is the reducer: (state, event) -> state. The input state is never
// mutated; the grid is cloned on write.
func Apply(layout *Layout, s State, ev Event) State {
	switch e := ev.(type) {
	case TypeLetter:
		return applyType(layout, s, e.Letter)
	case Erase:
		return applyErase(layout, s)
	case ToggleDirection:
		s.Direction = s.Direction.Toggle()
		return s
	case MoveCursor:
		return applyMove(layout, s, e.DRow, e.DCol)
	case ClickCell:
		return applyClick(layout, s, e.Row, e.Col)
	case RemoteCell:
		if layout.InBounds(e.Row, e.Col) {
			s.Grid = s.Grid.Clone()
			s.Grid[e.Row][e.Col] = e.Value
		}
		return s
	case RemoteGrid:
		// Remote edits never steal local focus.
		s.Grid = e.Grid.Clone()
		return s
	}
	return s
}

func step(dir Direction) (int, int) {
	if dir == Across {
		return 0, 1
	}
	return 1, 0
}

func applyType(layout *Layout, s State, letter rune) State {
	if s.Active == nil || layout.IsBlack(s.Active.Row, s.Active.Col) {
		return s
	}

	s.Grid = s.Grid.Clone()
	s.Grid[s.Active.Row][s.Active.Col] = strings.ToUpper(string(letter))

	// Advance to the next white cell in the current direction, scanning
	// row-major (across) or column-major (down) so typing flows onto the next
	// row or column instead of stalling at the edge. The probe is bounded so a
	// fully black remainder terminates with the cursor in place.
	r, c := s.Active.Row, s.Active.Col
	for i := 0; i < layout.Rows*layout.Cols; i++ {
		if s.Direction == Across {
			c++
			if c == layout.Cols {
				c, r = 0, r+1
			}
		} else {
			r++
			if r == layout.Rows {
				r, c = 0, c+1
			}
		}
		if !layout.InBounds(r, c) {
			return s
		}
		if !layout.IsBlack(r, c) {
			s.Active = &Cell{Row: r, Col: c}
			return s
		}
	}
	return s
}

func applyErase(layout *Layout, s State) State {
	if s.Active == nil || layout.IsBlack(s.Active.Row, s.Active.Col) {
		return s
	}

	s.Grid = s.Grid.Clone()
	s.Grid[s.Active.Row][s.Active.Col] = ""

	// A single step back, no skip-over-black search.
	dr, dc := step(s.Direction)
	r, c := s.Active.Row-dr, s.Active.Col-dc
	if layout.InBounds(r, c) && !layout.IsBlack(r, c) {
		s.Active = &Cell{Row: r, Col: c}
	}
	return s
}

func applyMove(layout *Layout, s State, dRow, dCol int) State {
	if s.Active == nil {
		return s
	}

	r, c := s.Active.Row, s.Active.Col
	for {
		r, c = r+dRow, c+dCol
		if !layout.InBounds(r, c) {
			// No white cell reachable before the boundary: no move.
			return s
		}
		if !layout.IsBlack(r, c) {
			s.Active = &Cell{Row: r, Col: c}
			return s
		}
	}
}

func applyClick(layout *Layout, s State, row, col int) State {
	if !layout.InBounds(row, col) || layout.IsBlack(row, col) {
		return s
	}

	if s.Active != nil && s.Active.Row == row && s.Active.Col == col {
		s.Direction = s.Direction.Toggle()
		return s
	}

	s.Active = &Cell{Row: row, Col: col}
	if !layout.HasClueAt(row, col, s.Direction) && layout.HasClueAt(row, col, s.Direction.Toggle()) {
		s.Direction = s.Direction.Toggle()
	}
	return s
}
