package dto

import (
	"time"

	"crossword-collab-be/pkg/crossword"

	"github.com/google/uuid"
)

type PuzzleMetaResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	CreatedAt time.Time `json:"created_at"`
}

type ShowPuzzleResponse struct {
	Id        uuid.UUID          `json:"id"`
	Title     string             `json:"title"`
	Rows      int                `json:"rows"`
	Cols      int                `json:"cols"`
	Document  crossword.Document `json:"document"`
	CreatedAt time.Time          `json:"created_at"`
}
