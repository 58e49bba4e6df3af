package service

import (
	"context"
	"testing"

	"crossword-collab-be/internal/dto"
	"crossword-collab-be/internal/pkg/serverutils"
	"crossword-collab-be/pkg/crossword"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressService(factory *fakeFactory, broadcaster *recordingBroadcaster) IProgressService {
	return NewProgressService(factory, broadcaster, droppingPublisher{}, nil)
}

func TestSaveProgressRoundTrip(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 15, 15)
	ownerId := uuid.New()
	session := seedSession(factory.store, puzzle, ownerId, false)
	broadcaster := &recordingBroadcaster{}
	svc := newProgressService(factory, broadcaster)

	grid := crossword.NewGrid(15, 15)
	grid[0][0] = "C"
	grid[0][1] = "A"
	grid[0][2] = "T"
	grid[14][14] = "Z"

	res, err := svc.Save(context.Background(), ownerId, session.Id, &dto.SaveProgressRequest{Grid: grid})
	require.NoError(t, err)
	assert.Equal(t, session.Id, res.SessionId)
	require.NotNil(t, res.UpdatedAt)

	// What was saved is exactly what was sent.
	stored := factory.store.progress[0]
	assert.Equal(t, grid, stored.Grid)
	assert.Equal(t, ownerId, stored.LastUpdatedById)

	// Other live clients are reconciled, excluding the saver.
	require.Len(t, broadcaster.grids, 1)
	assert.Equal(t, grid, broadcaster.grids[0])
	assert.Equal(t, session.Id, broadcaster.sessionIds[0])
	assert.Equal(t, ownerId, broadcaster.excluded[0])
}

func TestSaveProgressLastWriteWins(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 2, 2)
	ownerId := uuid.New()
	session := seedSession(factory.store, puzzle, ownerId, true)
	svc := newProgressService(factory, &recordingBroadcaster{})

	first := crossword.Grid{{"A", ""}, {"", ""}}
	second := crossword.Grid{{"", "B"}, {"", ""}}

	_, err := svc.Save(context.Background(), ownerId, session.Id, &dto.SaveProgressRequest{Grid: first})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), ownerId, session.Id, &dto.SaveProgressRequest{Grid: second})
	require.NoError(t, err)

	// The second save replaces the first wholesale; no merging.
	assert.Equal(t, second, factory.store.progress[0].Grid)
}

func TestSaveProgressRejectsWrongShape(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 3, 3)
	ownerId := uuid.New()
	session := seedSession(factory.store, puzzle, ownerId, false)
	broadcaster := &recordingBroadcaster{}
	svc := newProgressService(factory, broadcaster)

	_, err := svc.Save(context.Background(), ownerId, session.Id, &dto.SaveProgressRequest{Grid: crossword.NewGrid(2, 3)})
	assertAppError(t, err, serverutils.ErrKindValidation)
	assert.Empty(t, broadcaster.grids, "nothing broadcast on rejection")
}

func TestSaveProgressDeniedToStranger(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 2, 2)
	session := seedSession(factory.store, puzzle, uuid.New(), false)
	svc := newProgressService(factory, &recordingBroadcaster{})

	_, err := svc.Save(context.Background(), uuid.New(), session.Id, &dto.SaveProgressRequest{Grid: crossword.NewGrid(2, 2)})
	assertAppError(t, err, serverutils.ErrKindAccessDenied)
}

func TestSaveProgressAutoEnrollsOnCollaborative(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 2, 2)
	session := seedSession(factory.store, puzzle, uuid.New(), true)
	svc := newProgressService(factory, &recordingBroadcaster{})
	visitorId := uuid.New()

	_, err := svc.Save(context.Background(), visitorId, session.Id, &dto.SaveProgressRequest{Grid: crossword.NewGrid(2, 2)})
	require.NoError(t, err)
	assert.Len(t, factory.store.participants, 2)
}

func TestSubmitIsOneWay(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 2, 2)
	ownerId := uuid.New()
	session := seedSession(factory.store, puzzle, ownerId, false)
	svc := newProgressService(factory, &recordingBroadcaster{})

	res, err := svc.Submit(context.Background(), ownerId, session.Id)
	require.NoError(t, err)
	assert.Equal(t, session.Id, res.SessionId)
	assert.True(t, factory.store.progress[0].Submitted())

	// Second submit is rejected.
	_, err = svc.Submit(context.Background(), ownerId, session.Id)
	assertAppError(t, err, serverutils.ErrKindValidation)
}

func TestSaveAfterSubmitRejected(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 2, 2)
	ownerId := uuid.New()
	session := seedSession(factory.store, puzzle, ownerId, false)
	svc := newProgressService(factory, &recordingBroadcaster{})

	_, err := svc.Submit(context.Background(), ownerId, session.Id)
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), ownerId, session.Id, &dto.SaveProgressRequest{Grid: crossword.NewGrid(2, 2)})
	assertAppError(t, err, serverutils.ErrKindValidation)
}
