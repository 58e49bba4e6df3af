package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is anything publishable on the bus.
type Event interface {
	EventType() string
	Payload() interface{}
}

type SessionCreated struct {
	SessionId     uuid.UUID `json:"session_id"`
	PuzzleId      uuid.UUID `json:"puzzle_id"`
	OwnerId       uuid.UUID `json:"owner_id"`
	Collaborative bool      `json:"collaborative"`
	CreatedAt     time.Time `json:"created_at"`
}

func (e SessionCreated) EventType() string    { return "session.created" }
func (e SessionCreated) Payload() interface{} { return e }

type SessionDeleted struct {
	SessionId uuid.UUID `json:"session_id"`
	OwnerId   uuid.UUID `json:"owner_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

func (e SessionDeleted) EventType() string    { return "session.deleted" }
func (e SessionDeleted) Payload() interface{} { return e }

type ProgressSubmitted struct {
	SessionId   uuid.UUID `json:"session_id"`
	UserId      uuid.UUID `json:"user_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func (e ProgressSubmitted) EventType() string    { return "progress.submitted" }
func (e ProgressSubmitted) Payload() interface{} { return e }
