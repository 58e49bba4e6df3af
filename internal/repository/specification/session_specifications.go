package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionID filters child rows (participants, progress, invites) by session.
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// OwnedBy filters sessions by their owner.
type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_id = ?", s.UserID)
}

// ByUserID filters membership rows by user.
type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByToken filters invites by their token.
type ByToken struct {
	Token string
}

func (s ByToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token = ?", s.Token)
}

// ByPuzzleID filters sessions by puzzle.
type ByPuzzleID struct {
	PuzzleID uuid.UUID
}

func (s ByPuzzleID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("puzzle_id = ?", s.PuzzleID)
}
