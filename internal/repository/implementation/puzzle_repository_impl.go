package implementation

import (
	"context"
	"errors"

	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/mapper"
	"crossword-collab-be/internal/model"
	"crossword-collab-be/internal/repository/contract"
	"crossword-collab-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PuzzleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PuzzleMapper
}

func NewPuzzleRepository(db *gorm.DB) contract.PuzzleRepository {
	return &PuzzleRepositoryImpl{
		db:     db,
		mapper: mapper.NewPuzzleMapper(),
	}
}

func (r *PuzzleRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PuzzleRepositoryImpl) Create(ctx context.Context, puzzle *entity.Puzzle) error {
	m, err := r.mapper.ToModel(puzzle)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	e, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*puzzle = *e
	return nil
}

func (r *PuzzleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Puzzle, error) {
	var m model.Puzzle
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *PuzzleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Puzzle, error) {
	var models []*model.Puzzle
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}

func (r *PuzzleRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Puzzle{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
