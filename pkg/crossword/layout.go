package crossword

import "fmt"

type Direction string

const (
	Across Direction = "across"
	Down   Direction = "down"
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Across {
		return Down
	}
	return Across
}

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Clue struct {
	Number      int    `json:"number"`
	Text        string `json:"text"`
	Answer      string `json:"answer"`
	Enumeration string `json:"enumeration"`
}

// Document is the immutable puzzle payload persisted as a JSON column.
// Blocks holds one string per row, '#' for a black square, '.' for white.
type Document struct {
	Title  string   `json:"title"`
	Rows   int      `json:"rows"`
	Cols   int      `json:"cols"`
	Blocks []string `json:"blocks"`
	Across []Clue   `json:"across"`
	Down   []Clue   `json:"down"`
}

func (d *Document) Validate() error {
	if d.Rows <= 0 || d.Cols <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", d.Rows, d.Cols)
	}
	if len(d.Blocks) != d.Rows {
		return fmt.Errorf("blocks has %d rows, want %d", len(d.Blocks), d.Rows)
	}
	for i, row := range d.Blocks {
		if len(row) != d.Cols {
			return fmt.Errorf("blocks row %d has %d cols, want %d", i, len(row), d.Cols)
		}
	}
	return nil
}

// Slot is a maximal horizontal or vertical run of white cells of length >= 2,
// the unit a clue attaches to.
type Slot struct {
	Number    int
	Direction Direction
	Start     Cell
	Length    int
}

// Layout is the derived, query-friendly view of a Document: the black-cell
// map, standard crossword numbering, and per-cell slot coverage.
type Layout struct {
	Rows, Cols int
	black      [][]bool
	numbers    [][]int // 0 = unnumbered
	acrossSlot [][]int // slot number covering the cell across, 0 = none
	downSlot   [][]int
	Slots      []Slot
}

func NewLayout(doc *Document) (*Layout, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	l := &Layout{
		Rows:       doc.Rows,
		Cols:       doc.Cols,
		black:      make([][]bool, doc.Rows),
		numbers:    make([][]int, doc.Rows),
		acrossSlot: make([][]int, doc.Rows),
		downSlot:   make([][]int, doc.Rows),
	}
	for r := 0; r < doc.Rows; r++ {
		l.black[r] = make([]bool, doc.Cols)
		l.numbers[r] = make([]int, doc.Cols)
		l.acrossSlot[r] = make([]int, doc.Cols)
		l.downSlot[r] = make([]int, doc.Cols)
		for c := 0; c < doc.Cols; c++ {
			l.black[r][c] = doc.Blocks[r][c] == '#'
		}
	}

	l.number()
	return l, nil
}

// number assigns standard crossword numbering, scanning row-major: a white
// cell gets a number when it starts an across or down run of length >= 2.
func (l *Layout) number() {
	next := 1
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			if l.black[r][c] {
				continue
			}

			startsAcross := (c == 0 || l.black[r][c-1]) && c+1 < l.Cols && !l.black[r][c+1]
			startsDown := (r == 0 || l.black[r-1][c]) && r+1 < l.Rows && !l.black[r+1][c]

			if !startsAcross && !startsDown {
				continue
			}

			l.numbers[r][c] = next
			if startsAcross {
				length := 0
				for cc := c; cc < l.Cols && !l.black[r][cc]; cc++ {
					l.acrossSlot[r][cc] = next
					length++
				}
				l.Slots = append(l.Slots, Slot{Number: next, Direction: Across, Start: Cell{Row: r, Col: c}, Length: length})
			}
			if startsDown {
				length := 0
				for rr := r; rr < l.Rows && !l.black[rr][c]; rr++ {
					l.downSlot[rr][c] = next
					length++
				}
				l.Slots = append(l.Slots, Slot{Number: next, Direction: Down, Start: Cell{Row: r, Col: c}, Length: length})
			}
			next++
		}
	}
}

func (l *Layout) InBounds(row, col int) bool {
	return row >= 0 && row < l.Rows && col >= 0 && col < l.Cols
}

func (l *Layout) IsBlack(row, col int) bool {
	return !l.InBounds(row, col) || l.black[row][col]
}

// NumberAt returns the clue number printed in the cell, 0 if none.
func (l *Layout) NumberAt(row, col int) int {
	if !l.InBounds(row, col) {
		return 0
	}
	return l.numbers[row][col]
}

// ClueAt returns the number of the slot covering the cell in the given
// direction, 0 if the cell is not part of a slot that way.
func (l *Layout) ClueAt(row, col int, dir Direction) int {
	if !l.InBounds(row, col) {
		return 0
	}
	if dir == Across {
		return l.acrossSlot[row][col]
	}
	return l.downSlot[row][col]
}

func (l *Layout) HasClueAt(row, col int, dir Direction) bool {
	return l.ClueAt(row, col, dir) != 0
}
