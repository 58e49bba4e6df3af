package service

import (
	"context"
	"errors"
	"testing"

	"crossword-collab-be/internal/dto"
	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/pkg/serverutils"
	"crossword-collab-be/pkg/crossword"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAppError(t *testing.T, err error, kind serverutils.ErrorKind) {
	t.Helper()
	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, kind, appErr.Kind)
}

func TestCreateSessionSeedsEmptyProgressAndOwner(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 3, 3)
	svc := NewSessionService(factory, nil, nil)
	ownerId := uuid.New()

	res, err := svc.Create(context.Background(), ownerId, &dto.CreateSessionRequest{
		PuzzleId:      puzzle.Id,
		Collaborative: true,
		Difficulty:    "medium",
	})
	require.NoError(t, err)
	require.NotNil(t, res)

	require.Len(t, factory.store.sessions, 1)
	session := factory.store.sessions[0]
	assert.Equal(t, res.Id, session.Id)
	assert.Equal(t, ownerId, session.OwnerId)
	assert.True(t, session.Collaborative)

	require.Len(t, factory.store.progress, 1)
	progress := factory.store.progress[0]
	assert.Equal(t, session.Id, progress.SessionId)
	assert.Equal(t, crossword.NewGrid(3, 3), progress.Grid)
	assert.False(t, progress.Submitted())

	require.Len(t, factory.store.participants, 1)
	assert.Equal(t, ownerId, factory.store.participants[0].UserId)
}

func TestCreateSessionUnknownPuzzle(t *testing.T) {
	factory := newFakeFactory()
	svc := NewSessionService(factory, nil, nil)

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateSessionRequest{PuzzleId: uuid.New()})
	assertAppError(t, err, serverutils.ErrKindNotFound)
}

func seedSession(store *fakeStore, puzzle *entity.Puzzle, ownerId uuid.UUID, collaborative bool) *entity.Session {
	session := &entity.Session{
		Id:            uuid.New(),
		PuzzleId:      puzzle.Id,
		OwnerId:       ownerId,
		Collaborative: collaborative,
	}
	store.sessions = append(store.sessions, session)
	store.participants = append(store.participants, &entity.Participant{
		Id:        uuid.New(),
		SessionId: session.Id,
		UserId:    ownerId,
	})
	store.progress = append(store.progress, &entity.Progress{
		Id:        uuid.New(),
		SessionId: session.Id,
		Grid:      crossword.NewGrid(puzzle.Rows, puzzle.Cols),
	})
	return session
}

func TestShowSessionAsOwner(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 2, 2)
	ownerId := uuid.New()
	session := seedSession(factory.store, puzzle, ownerId, false)
	svc := NewSessionService(factory, nil, nil)

	res, err := svc.Show(context.Background(), ownerId, session.Id)
	require.NoError(t, err)

	assert.Equal(t, session.Id, res.Session.Id)
	assert.Equal(t, puzzle.Id, res.Puzzle.Id)
	assert.Equal(t, crossword.NewGrid(2, 2), res.Progress.Grid)
	require.Len(t, res.Participants, 1)
	assert.Equal(t, ownerId, res.Participants[0].UserId)
}

func TestShowPrivateSessionDeniedToStranger(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 2, 2)
	session := seedSession(factory.store, puzzle, uuid.New(), false)
	svc := NewSessionService(factory, nil, nil)

	_, err := svc.Show(context.Background(), uuid.New(), session.Id)
	assertAppError(t, err, serverutils.ErrKindAccessDenied)
	assert.Len(t, factory.store.participants, 1, "no enrollment on denial")
}

func TestShowCollaborativeSessionAutoEnrolls(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 2, 2)
	session := seedSession(factory.store, puzzle, uuid.New(), true)
	svc := NewSessionService(factory, nil, nil)
	visitorId := uuid.New()

	_, err := svc.Show(context.Background(), visitorId, session.Id)
	require.NoError(t, err)
	assert.Len(t, factory.store.participants, 2)

	// A second visit does not enroll twice.
	_, err = svc.Show(context.Background(), visitorId, session.Id)
	require.NoError(t, err)
	assert.Len(t, factory.store.participants, 2)
}

func TestShowUnknownSession(t *testing.T) {
	factory := newFakeFactory()
	svc := NewSessionService(factory, nil, nil)

	_, err := svc.Show(context.Background(), uuid.New(), uuid.New())
	assertAppError(t, err, serverutils.ErrKindNotFound)
}

func TestGetAllReturnsOnlyMemberSessions(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 2, 2)
	userId := uuid.New()
	mine := seedSession(factory.store, puzzle, userId, false)
	seedSession(factory.store, puzzle, uuid.New(), false) // someone else's
	svc := NewSessionService(factory, nil, nil)

	res, err := svc.GetAll(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, mine.Id, res[0].Id)
}

func TestGetAllWithNoMemberships(t *testing.T) {
	factory := newFakeFactory()
	svc := NewSessionService(factory, nil, nil)

	res, err := svc.GetAll(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestDeleteSessionCascades(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 2, 2)
	ownerId := uuid.New()
	session := seedSession(factory.store, puzzle, ownerId, true)
	factory.store.invites = append(factory.store.invites, &entity.SessionInvite{
		Id:        uuid.New(),
		SessionId: session.Id,
		Token:     "tok",
	})
	svc := NewSessionService(factory, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), ownerId, session.Id))

	assert.Empty(t, factory.store.sessions)
	assert.Empty(t, factory.store.progress)
	assert.Empty(t, factory.store.participants)
	assert.Empty(t, factory.store.invites)
}

func TestDeleteSessionOwnerOnly(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 2, 2)
	session := seedSession(factory.store, puzzle, uuid.New(), true)
	svc := NewSessionService(factory, nil, nil)

	err := svc.Delete(context.Background(), uuid.New(), session.Id)
	assertAppError(t, err, serverutils.ErrKindAccessDenied)
	assert.Len(t, factory.store.sessions, 1)
}
