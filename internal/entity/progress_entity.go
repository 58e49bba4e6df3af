package entity

import (
	"time"

	"crossword-collab-be/pkg/crossword"

	"github.com/google/uuid"
)

// Progress is the authoritative grid snapshot for a session, exactly one per
// session. SubmittedAt is a terminal one-way flag.
type Progress struct {
	Id              uuid.UUID
	SessionId       uuid.UUID
	Grid            crossword.Grid
	LastUpdatedById uuid.UUID
	SubmittedAt     *time.Time
	UpdatedAt       *time.Time
	CreatedAt       time.Time
}

func (p *Progress) Submitted() bool {
	return p.SubmittedAt != nil
}
