package entity

import (
	"time"

	"crossword-collab-be/pkg/crossword"

	"github.com/google/uuid"
)

// Puzzle is the immutable reference document: layout, numbering and clue
// lists live inside Document. Many sessions may reference one puzzle.
type Puzzle struct {
	Id        uuid.UUID
	Title     string
	Rows      int
	Cols      int
	Document  crossword.Document
	CreatedAt time.Time
}
