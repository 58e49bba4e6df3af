package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"time"

	"crossword-collab-be/internal/dto"
	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/pkg/mailer"
	"crossword-collab-be/internal/pkg/serverutils"
	"crossword-collab-be/internal/repository/specification"
	"crossword-collab-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IInviteService interface {
	Create(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.CreateInviteRequest) (*dto.CreateInviteResponse, error)
	Accept(ctx context.Context, userId uuid.UUID, req *dto.AcceptInviteRequest) (*dto.AcceptInviteResponse, error)
}

type inviteService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewInviteService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService) IInviteService {
	return &inviteService{
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func newInviteToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Create issues an invite for a collaborative session. Only the owner may
// invite; the email is sent best-effort and a mailer failure does not void
// the persisted token.
func (s *inviteService) Create(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.CreateInviteRequest) (*dto.CreateInviteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, serverutils.NewTransientIOError("failed to load session", err)
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("session not found")
	}
	if session.OwnerId != userId {
		return nil, serverutils.NewAccessDeniedError("only the owner can invite")
	}
	if !session.Collaborative {
		return nil, serverutils.NewValidationError("session is not collaborative")
	}

	token, err := newInviteToken()
	if err != nil {
		return nil, serverutils.NewTransientIOError("failed to generate token", err)
	}

	invite := entity.SessionInvite{
		Id:        uuid.New(),
		SessionId: sessionId,
		InviterId: userId,
		Email:     req.Email,
		Token:     token,
		CreatedAt: time.Now(),
	}
	if err := uow.InviteRepository().Create(ctx, &invite); err != nil {
		return nil, serverutils.NewTransientIOError("failed to create invite", err)
	}

	inviter, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	inviterName := "A fellow solver"
	if err == nil && inviter != nil {
		inviterName = inviter.DisplayName
	}

	puzzleTitle := "a crossword"
	if puzzle, err := uow.PuzzleRepository().FindOne(ctx, specification.ByID{ID: session.PuzzleId}); err == nil && puzzle != nil {
		puzzleTitle = puzzle.Title
	}

	if err := s.emailService.SendSessionInvite(req.Email, inviterName, puzzleTitle, token); err != nil {
		log.Printf("[WARN] invite email to %s failed: %v", req.Email, err)
	}

	return &dto.CreateInviteResponse{
		Id:    invite.Id,
		Token: invite.Token,
	}, nil
}

// Accept enrolls the caller into the invite's session. Idempotent: accepting
// an already accepted invite (or being already enrolled) succeeds.
func (s *inviteService) Accept(ctx context.Context, userId uuid.UUID, req *dto.AcceptInviteRequest) (*dto.AcceptInviteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	invite, err := uow.InviteRepository().FindOne(ctx, specification.ByToken{Token: req.Token})
	if err != nil {
		return nil, serverutils.NewTransientIOError("failed to load invite", err)
	}
	if invite == nil {
		return nil, serverutils.NewNotFoundError("invite not found")
	}

	now := time.Now()
	participant := &entity.Participant{
		Id:           uuid.New(),
		SessionId:    invite.SessionId,
		UserId:       userId,
		JoinedAt:     now,
		LastActiveAt: now,
	}
	if err := uow.ParticipantRepository().Create(ctx, participant); err != nil {
		return nil, serverutils.NewTransientIOError("failed to enroll participant", err)
	}

	if invite.AcceptedAt == nil {
		invite.AcceptedAt = &now
		if err := uow.InviteRepository().Update(ctx, invite); err != nil {
			return nil, serverutils.NewTransientIOError("failed to update invite", err)
		}
	}

	return &dto.AcceptInviteResponse{SessionId: invite.SessionId}, nil
}
