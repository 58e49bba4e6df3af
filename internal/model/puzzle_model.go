package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Puzzle struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Rows      int            `gorm:"not null"`
	Cols      int            `gorm:"not null"`
	Document  datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (Puzzle) TableName() string {
	return "puzzles"
}
