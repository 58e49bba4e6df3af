package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PuzzleId      uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Collaborative bool      `gorm:"not null;default:false"`
	Difficulty    string    `gorm:"type:varchar(32)"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`

	Puzzle *Puzzle `gorm:"foreignKey:PuzzleId"`
}

func (Session) TableName() string {
	return "sessions"
}
