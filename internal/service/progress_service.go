package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"crossword-collab-be/internal/dto"
	"crossword-collab-be/internal/pkg/serverutils"
	"crossword-collab-be/internal/repository/specification"
	"crossword-collab-be/internal/repository/unitofwork"
	"crossword-collab-be/pkg/crossword"
	"crossword-collab-be/pkg/events"
	pktNats "crossword-collab-be/pkg/nats"

	"github.com/google/uuid"
)

// SyncBroadcaster pushes an authoritative grid snapshot to a session's live
// connections. Implemented by the websocket hub.
type SyncBroadcaster interface {
	BroadcastProgress(sessionId uuid.UUID, grid crossword.Grid, excludeUserId uuid.UUID)
}

type IProgressService interface {
	Save(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.SaveProgressRequest) (*dto.SaveProgressResponse, error)
	Submit(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SubmitSessionResponse, error)
}

type progressService struct {
	uowFactory  unitofwork.RepositoryFactory
	broadcaster SyncBroadcaster
	publisher   IPublisherService
	natsPub     *pktNats.Publisher
}

func NewProgressService(
	uowFactory unitofwork.RepositoryFactory,
	broadcaster SyncBroadcaster,
	publisher IPublisherService,
	natsPub *pktNats.Publisher,
) IProgressService {
	return &progressService{
		uowFactory:  uowFactory,
		broadcaster: broadcaster,
		publisher:   publisher,
		natsPub:     natsPub,
	}
}

// Save overwrites the session's grid snapshot with the client's full grid.
// Last write wins: there is no version check, and concurrent saves to the
// same session resolve to whichever lands last in processing order.
func (s *progressService) Save(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.SaveProgressRequest) (*dto.SaveProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := resolveSessionAccess(ctx, uow, sessionId, userId)
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

	if err := req.Grid.ValidateShape(puzzle.Rows, puzzle.Cols); err != nil {
		return nil, serverutils.NewValidationError(err.Error())
	}

	progress, err := uow.ProgressRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return nil, serverutils.NewTransientIOError("failed to load progress", err)
	}
	if progress == nil {
		return nil, serverutils.NewNotFoundError("progress not found")
	}
	if progress.Submitted() {
		return nil, serverutils.NewValidationError("session already submitted")
	}

	now := time.Now()
	progress.Grid = req.Grid
	progress.LastUpdatedById = userId
	progress.UpdatedAt = &now

	if err := uow.ProgressRepository().Update(ctx, progress); err != nil {
		return nil, serverutils.NewTransientIOError("failed to save progress", err)
	}

	// Reconcile other live clients to the authoritative grid. The saver's own
	// sockets are excluded; they already hold this state.
	s.broadcaster.BroadcastProgress(sessionId, progress.Grid, userId)

	s.publishActivity(ctx, sessionId, userId, now)

	return &dto.SaveProgressResponse{
		SessionId: sessionId,
		UpdatedAt: progress.UpdatedAt,
	}, nil
}

// Submit sets the terminal submitted flag. One-way: a second submit is
// rejected, and further saves are refused once submitted.
func (s *progressService) Submit(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) (*dto.SubmitSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := resolveSessionAccess(ctx, uow, sessionId, userId); err != nil {
		return nil, err
	}

	progress, err := uow.ProgressRepository().FindOne(ctx, specification.BySessionID{SessionID: sessionId})
	if err != nil {
		return nil, serverutils.NewTransientIOError("failed to load progress", err)
	}
	if progress == nil {
		return nil, serverutils.NewNotFoundError("progress not found")
	}
	if progress.Submitted() {
		return nil, serverutils.NewValidationError("session already submitted")
	}

	now := time.Now()
	progress.SubmittedAt = &now
	progress.LastUpdatedById = userId
	progress.UpdatedAt = &now

	if err := uow.ProgressRepository().Update(ctx, progress); err != nil {
		return nil, serverutils.NewTransientIOError("failed to submit progress", err)
	}

	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, events.ProgressSubmitted{
			SessionId:   sessionId,
			UserId:      userId,
			SubmittedAt: now,
		}); err != nil {
			log.Printf("[WARN] failed to publish progress.submitted: %v", err)
		}
	}

	return &dto.SubmitSessionResponse{
		SessionId:   sessionId,
		SubmittedAt: now,
	}, nil
}

func (s *progressService) publishActivity(ctx context.Context, sessionId, userId uuid.UUID, at time.Time) {
	msg := dto.ActivityMessage{
		SessionId: sessionId,
		UserId:    userId,
		At:        at,
	}
	msgJson, _ := json.Marshal(msg)
	if err := s.publisher.Publish(ctx, msgJson); err != nil {
		log.Printf("[WARN] failed to publish activity message: %v", err)
	}
}
