package service

import (
	"context"
	"time"

	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/pkg/serverutils"
	"crossword-collab-be/internal/repository/specification"
	"crossword-collab-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// resolveSessionAccess implements the shared access rules for session reads
// and writes: a missing session is NotFound; the owner and existing
// participants always pass; a non-member of a non-collaborative session is
// denied; a non-member of a collaborative session is auto-enrolled as a
// participant (idempotent) instead of denied.
func resolveSessionAccess(ctx context.Context, uow unitofwork.UnitOfWork, sessionId, userId uuid.UUID) (*entity.Session, error) {
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, serverutils.NewTransientIOError("failed to load session", err)
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("session not found")
	}

	if session.OwnerId == userId {
		return session, nil
	}

	member, err := uow.ParticipantRepository().FindOne(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, serverutils.NewTransientIOError("failed to load participant", err)
	}
	if member != nil {
		return session, nil
	}

	if !session.Collaborative {
		return nil, serverutils.NewAccessDeniedError("not a participant of this session")
	}

	// Collaborative sessions auto-enroll on first access.
	now := time.Now()
	participant := &entity.Participant{
		Id:           uuid.New(),
		SessionId:    sessionId,
		UserId:       userId,
		JoinedAt:     now,
		LastActiveAt: now,
	}
	if err := uow.ParticipantRepository().Create(ctx, participant); err != nil {
		return nil, serverutils.NewTransientIOError("failed to enroll participant", err)
	}

	return session, nil
}
