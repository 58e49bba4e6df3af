package service

import (
	"context"
	"testing"
	"time"

	"crossword-collab-be/internal/pkg/serverutils"
	"crossword-collab-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPuzzleShowReadsThroughCache(t *testing.T) {
	factory := newFakeFactory()
	puzzle := seedPuzzle(factory.store, 2, 2)
	svc := NewPuzzleService(factory, memory.NewPuzzleCache(time.Minute))

	res, err := svc.Show(context.Background(), puzzle.Id)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Title, res.Title)

	// A second read is served from cache: removing the backing row changes
	// nothing.
	factory.store.puzzles = nil
	res, err = svc.Show(context.Background(), puzzle.Id)
	require.NoError(t, err)
	assert.Equal(t, puzzle.Id, res.Id)
}

func TestPuzzleShowUnknown(t *testing.T) {
	factory := newFakeFactory()
	svc := NewPuzzleService(factory, memory.NewPuzzleCache(time.Minute))

	_, err := svc.Show(context.Background(), uuid.New())
	assertAppError(t, err, serverutils.ErrKindNotFound)
}

func TestPuzzleGetAllReturnsMetadataOnly(t *testing.T) {
	factory := newFakeFactory()
	seedPuzzle(factory.store, 5, 5)
	seedPuzzle(factory.store, 15, 15)
	svc := NewPuzzleService(factory, memory.NewPuzzleCache(time.Minute))

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, res, 2)
}
