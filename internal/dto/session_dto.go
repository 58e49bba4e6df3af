package dto

import (
	"time"

	"crossword-collab-be/pkg/crossword"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	PuzzleId      uuid.UUID `json:"puzzle_id" validate:"required"`
	Collaborative bool      `json:"collaborative"`
	Difficulty    string    `json:"difficulty"`
}

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type SessionResponse struct {
	Id            uuid.UUID `json:"id"`
	PuzzleId      uuid.UUID `json:"puzzle_id"`
	OwnerId       uuid.UUID `json:"owner_id"`
	Collaborative bool      `json:"collaborative"`
	Difficulty    string    `json:"difficulty,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ParticipantResponse struct {
	UserId       uuid.UUID `json:"user_id"`
	JoinedAt     time.Time `json:"joined_at"`
	LastActiveAt time.Time `json:"last_active_at"`
	Online       bool      `json:"online"`
}

type ProgressResponse struct {
	Grid            crossword.Grid `json:"grid"`
	LastUpdatedById uuid.UUID      `json:"last_updated_by_id"`
	SubmittedAt     *time.Time     `json:"submitted_at,omitempty"`
	UpdatedAt       *time.Time     `json:"updated_at,omitempty"`
}

// ShowSessionResponse is the full session view: the session row, its puzzle
// document, the authoritative grid snapshot and the participant roster.
type ShowSessionResponse struct {
	Session      SessionResponse       `json:"session"`
	Puzzle       ShowPuzzleResponse    `json:"puzzle"`
	Progress     ProgressResponse      `json:"progress"`
	Participants []ParticipantResponse `json:"participants"`
}

type SaveProgressRequest struct {
	Grid crossword.Grid `json:"grid" validate:"required"`
}

type SaveProgressResponse struct {
	SessionId uuid.UUID  `json:"session_id"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type SubmitSessionResponse struct {
	SessionId   uuid.UUID `json:"session_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ActivityMessage is the bus payload published on each progress save; a
// consumer updates the participant's last-activity row off the hot path.
type ActivityMessage struct {
	SessionId uuid.UUID `json:"session_id"`
	UserId    uuid.UUID `json:"user_id"`
	At        time.Time `json:"at"`
}
