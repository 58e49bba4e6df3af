package contract

import (
	"context"
	"time"

	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *entity.Participant) error
	// Touch updates the last-activity timestamp for a (session, user) pair.
	Touch(ctx context.Context, sessionId, userId uuid.UUID, at time.Time) error
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Participant, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Participant, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
