package model

import (
	"time"

	"github.com/google/uuid"
)

type Participant struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_participants_session_user"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_participants_session_user"`
	JoinedAt     time.Time `gorm:"autoCreateTime"`
	LastActiveAt time.Time `gorm:"autoUpdateTime"`

	Session *Session `gorm:"foreignKey:SessionId;constraint:OnDelete:CASCADE"`
}

func (Participant) TableName() string {
	return "participants"
}
