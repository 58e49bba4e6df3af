package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	DisplayName string    `gorm:"type:varchar(255);not null"`
	Role        string    `gorm:"type:varchar(32);not null;default:'user'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
