package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionInvite struct {
	Id         uuid.UUID
	SessionId  uuid.UUID
	InviterId  uuid.UUID
	Email      string
	Token      string
	AcceptedAt *time.Time
	CreatedAt  time.Time
}
