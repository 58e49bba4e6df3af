package unitofwork

import (
	"context"

	"crossword-collab-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PuzzleRepository() contract.PuzzleRepository
	SessionRepository() contract.SessionRepository
	ParticipantRepository() contract.ParticipantRepository
	ProgressRepository() contract.ProgressRepository
	InviteRepository() contract.InviteRepository
}
