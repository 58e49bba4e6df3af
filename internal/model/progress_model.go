package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Progress struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Grid            datatypes.JSON `gorm:"type:jsonb;not null"`
	LastUpdatedById uuid.UUID      `gorm:"type:uuid"`
	SubmittedAt     *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`

	Session *Session `gorm:"foreignKey:SessionId;constraint:OnDelete:CASCADE"`
}

func (Progress) TableName() string {
	return "progress"
}
