package service

import (
	"context"
	"log"
	"time"

	"crossword-collab-be/internal/dto"
	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/pkg/serverutils"
	"crossword-collab-be/internal/repository/specification"
	"crossword-collab-be/internal/repository/unitofwork"
	"crossword-collab-be/pkg/crossword"
	"crossword-collab-be/pkg/events"
	pktNats "crossword-collab-be/pkg/nats"
	"crossword-collab-be/pkg/presence"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowSessionResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type sessionService struct {
	uowFactory    unitofwork.RepositoryFactory
	presenceStore *presence.Store
	natsPub       *pktNats.Publisher
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	presenceStore *presence.Store,
	natsPub *pktNats.Publisher,
) ISessionService {
	return &sessionService{
		uowFactory:    uowFactory,
		presenceStore: presenceStore,
		natsPub:       natsPub,
	}
}

// Create starts a solving session for a puzzle. The all-empty progress row is
// created in the same transaction: a session without its progress snapshot
// never becomes visible.
func (s *sessionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	puzzle, err := uow.PuzzleRepository().FindOne(ctx, specification.ByID{ID: req.PuzzleId})
	if err != nil {
		return nil, serverutils.NewTransientIOError("failed to load puzzle", err)
	}
	if puzzle == nil {
		return nil, serverutils.NewNotFoundError("puzzle not found")
	}

	now := time.Now()
	session := entity.Session{
		Id:            uuid.New(),
		PuzzleId:      puzzle.Id,
		OwnerId:       userId,
		Collaborative: req.Collaborative,
		Difficulty:    req.Difficulty,
		CreatedAt:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, serverutils.NewTransientIOError("failed to begin transaction", err)
	}
	defer uow.Rollback()

	if err := uow.SessionRepository().Create(ctx, &session); err != nil {
		return nil, serverutils.NewTransientIOError("failed to create session", err)
	}

	progress := entity.Progress{
		Id:              uuid.New(),
		SessionId:       session.Id,
		Grid:            crossword.NewGrid(puzzle.Rows, puzzle.Cols),
		LastUpdatedById: userId,
		CreatedAt:       now,
	}
	if err := uow.ProgressRepository().Create(ctx, &progress); err != nil {
		return nil, serverutils.NewTransientIOError("failed to create progress", err)
	}

	owner := &entity.Participant{
		Id:           uuid.New(),
		SessionId:    session.Id,
		UserId:       userId,
		JoinedAt:     now,
		LastActiveAt: now,
	}
	if err := uow.ParticipantRepository().Create(ctx, owner); err != nil {
		return nil, serverutils.NewTransientIOError("failed to enroll owner", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, serverutils.NewTransientIOError("failed to commit session", err)
	}

	s.publish(ctx, events.SessionCreated{
		SessionId:     session.Id,
		PuzzleId:      puzzle.Id,
		OwnerId:       userId,
		Collaborative: session.Collaborative,
		CreatedAt:     now,
	})

	return &dto.CreateSessionResponse{Id: session.Id}, nil
}

func (s *sessionService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := resolveSessionAccess(ctx, uow, id, userId)
	if err != nil {
		return nil, err
	}

	puzzle, err := uow.PuzzleRepository().FindOne(ctx, specification.ByID{ID: session.PuzzleId})
	if err != nil {
		return nil, serverutils.NewTransientIOError("failed to load puzzle", err)
	}
	if puzzle == nil {
		return nil, serverutils.NewNotFoundError("puzzle not found")
	}

	progress, err := uow.ProgressRepository().FindOne(ctx, specification.BySessionID{SessionID: id})
	if err != nil {
		return nil, serverutils.NewTransientIOError("failed to load progress", err)
	}
	if progress == nil {
		return nil, serverutils.NewNotFoundError("progress not found")
	}

	participants, err := uow.ParticipantRepository().FindAll(ctx,
		specification.BySessionID{SessionID: id},
		specification.OrderBy{Field: "joined_at"},
	)
	if err != nil {
		return nil, serverutils.NewTransientIOError("failed to load participants", err)
	}

	online, err := s.presenceStore.Online(ctx, id)
	if err != nil {
		// Presence is advisory; a Redis hiccup must not fail the fetch.
		log.Printf("[WARN] presence lookup failed for session %s: %v", id, err)
	}

	participantViews := make([]*dto.ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		participantViews = append(participantViews, &dto.ParticipantResponse{
			UserId:       p.UserId,
			JoinedAt:     p.JoinedAt,
			LastActiveAt: p.LastActiveAt,
			Online:       online[p.UserId],
		})
	}

	res := &dto.ShowSessionResponse{
		Session: dto.SessionResponse{
			Id:            session.Id,
			PuzzleId:      session.PuzzleId,
			OwnerId:       session.OwnerId,
			Collaborative: session.Collaborative,
			Difficulty:    session.Difficulty,
			CreatedAt:     session.CreatedAt,
		},
		Puzzle: dto.ShowPuzzleResponse{
			Id:        puzzle.Id,
			Title:     puzzle.Title,
			Rows:      puzzle.Rows,
			Cols:      puzzle.Cols,
			Document:  puzzle.Document,
			CreatedAt: puzzle.CreatedAt,
		},
		Progress: dto.ProgressResponse{
			Grid:            progress.Grid,
			LastUpdatedById: progress.LastUpdatedById,
			SubmittedAt:     progress.SubmittedAt,
			UpdatedAt:       progress.UpdatedAt,
		},
	}
	for _, p := range participantViews {
		res.Participants = append(res.Participants, *p)
	}

	return res, nil
}

func (s *sessionService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	memberships, err := uow.ParticipantRepository().FindAll(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, serverutils.NewTransientIOError("failed to load memberships", err)
	}

	ids := make([]uuid.UUID, 0, len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.SessionId)
	}
	if len(ids) == 0 {
		return []*dto.SessionResponse{}, nil
	}

	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.ByIDs{IDs: ids},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.NewTransientIOError("failed to load sessions", err)
	}

	result := make([]*dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, &dto.SessionResponse{
			Id:            session.Id,
			PuzzleId:      session.PuzzleId,
			OwnerId:       session.OwnerId,
			Collaborative: session.Collaborative,
			Difficulty:    session.Difficulty,
			CreatedAt:     session.CreatedAt,
		})
	}
	return result, nil
}

// Delete removes a session and everything hanging off it. Only the owner may
// delete; participants lose access implicitly.
func (s *sessionService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return serverutils.NewTransientIOError("failed to load session", err)
	}
	if session == nil {
		return serverutils.NewNotFoundError("session not found")
	}
	if session.OwnerId != userId {
		return serverutils.NewAccessDeniedError("only the owner can delete a session")
	}

	if err := uow.Begin(ctx); err != nil {
		return serverutils.NewTransientIOError("failed to begin transaction", err)
	}
	defer uow.Rollback()

	if err := uow.ProgressRepository().DeleteBySessionId(ctx, id); err != nil {
		return serverutils.NewTransientIOError("failed to delete progress", err)
	}
	if err := uow.ParticipantRepository().DeleteBySessionId(ctx, id); err != nil {
		return serverutils.NewTransientIOError("failed to delete participants", err)
	}
	if err := uow.InviteRepository().DeleteBySessionId(ctx, id); err != nil {
		return serverutils.NewTransientIOError("failed to delete invites", err)
	}
	if err := uow.SessionRepository().Delete(ctx, id); err != nil {
		return serverutils.NewTransientIOError("failed to delete session", err)
	}

	if err := uow.Commit(); err != nil {
		return serverutils.NewTransientIOError("failed to commit delete", err)
	}

	if err := s.presenceStore.Clear(ctx, id); err != nil {
		log.Printf("[WARN] presence clear failed for session %s: %v", id, err)
	}

	s.publish(ctx, events.SessionDeleted{
		SessionId: id,
		OwnerId:   userId,
		DeletedAt: time.Now(),
	})

	return nil
}

func (s *sessionService) publish(ctx context.Context, event events.Event) {
	if s.natsPub == nil {
		return
	}
	if err := s.natsPub.Publish(ctx, event); err != nil {
		log.Printf("[WARN] failed to publish %s: %v", event.EventType(), err)
	}
}
