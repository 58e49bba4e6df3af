package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionInvite struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId  uuid.UUID `gorm:"type:uuid;not null;index"`
	InviterId  uuid.UUID `gorm:"type:uuid;not null"`
	Email      string    `gorm:"type:varchar(255);not null"`
	Token      string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	AcceptedAt *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	Session *Session `gorm:"foreignKey:SessionId;constraint:OnDelete:CASCADE"`
}

func (SessionInvite) TableName() string {
	return "session_invites"
}
