package service

import (
	"context"

	"crossword-collab-be/internal/dto"
	"crossword-collab-be/internal/pkg/serverutils"
	"crossword-collab-be/internal/repository/memory"
	"crossword-collab-be/internal/repository/specification"
	"crossword-collab-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPuzzleService interface {
	GetAll(ctx context.Context) ([]*dto.PuzzleMetaResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ShowPuzzleResponse, error)
}

type puzzleService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.PuzzleCache
}

func NewPuzzleService(uowFactory unitofwork.RepositoryFactory, cache *memory.PuzzleCache) IPuzzleService {
	return &puzzleService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *puzzleService) GetAll(ctx context.Context) ([]*dto.PuzzleMetaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	puzzles, err := uow.PuzzleRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, serverutils.NewTransientIOError("failed to load puzzles", err)
	}

	result := make([]*dto.PuzzleMetaResponse, 0, len(puzzles))
	for _, p := range puzzles {
		result = append(result, &dto.PuzzleMetaResponse{
			Id:        p.Id,
			Title:     p.Title,
			Rows:      p.Rows,
			Cols:      p.Cols,
			CreatedAt: p.CreatedAt,
		})
	}
	return result, nil
}

// Show serves the full puzzle document, read-through cached: puzzles are
// immutable once seeded so the cache never goes stale.
func (s *puzzleService) Show(ctx context.Context, id uuid.UUID) (*dto.ShowPuzzleResponse, error) {
	puzzle, found := s.cache.Get(id)
	if !found {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		var err error
		puzzle, err = uow.PuzzleRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, serverutils.NewTransientIOError("failed to load puzzle", err)
		}
		if puzzle == nil {
			return nil, serverutils.NewNotFoundError("puzzle not found")
		}
		s.cache.Set(puzzle)
	}

	return &dto.ShowPuzzleResponse{
		Id:        puzzle.Id,
		Title:     puzzle.Title,
		Rows:      puzzle.Rows,
		Cols:      puzzle.Cols,
		Document:  puzzle.Document,
		CreatedAt: puzzle.CreatedAt,
	}, nil
}
