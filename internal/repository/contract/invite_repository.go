package contract

import (
	"context"

	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InviteRepository interface {
	Create(ctx context.Context, invite *entity.SessionInvite) error
	Update(ctx context.Context, invite *entity.SessionInvite) error
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionInvite, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionInvite, error)
}
