package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id          uuid.UUID
	Email       string
	DisplayName string
	Role        string
	CreatedAt   time.Time
}
