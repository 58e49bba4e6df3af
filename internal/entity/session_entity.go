package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is one instance of a user (or group) solving one puzzle.
type Session struct {
	Id            uuid.UUID
	PuzzleId      uuid.UUID
	OwnerId       uuid.UUID
	Collaborative bool
	Difficulty    string
	CreatedAt     time.Time
}
