package entity

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a (session, user) membership record. Created on first
// access to a collaborative session or on invite acceptance; removed only by
// session or user deletion.
type Participant struct {
	Id           uuid.UUID
	SessionId    uuid.UUID
	UserId       uuid.UUID
	JoinedAt     time.Time
	LastActiveAt time.Time
}
