package contract

import (
	"context"

	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProgressRepository interface {
	Create(ctx context.Context, progress *entity.Progress) error
	// Update overwrites the stored grid unconditionally (last write wins, no
	// version check).
	Update(ctx context.Context, progress *entity.Progress) error
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Progress, error)
}
