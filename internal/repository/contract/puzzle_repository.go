package contract

import (
	"context"

	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/repository/specification"
)

type PuzzleRepository interface {
	Create(ctx context.Context, puzzle *entity.Puzzle) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Puzzle, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Puzzle, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
