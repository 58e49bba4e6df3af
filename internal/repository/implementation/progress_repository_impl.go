package implementation

import (
	"context"
	"errors"

	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/mapper"
	"crossword-collab-be/internal/model"
	"crossword-collab-be/internal/repository/contract"
	"crossword-collab-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProgressMapper
}

func NewProgressRepository(db *gorm.DB) contract.ProgressRepository {
	return &ProgressRepositoryImpl{
		db:     db,
		mapper: mapper.NewProgressMapper(),
	}
}

func (r *ProgressRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProgressRepositoryImpl) Create(ctx context.Context, progress *entity.Progress) error {
	m, err := r.mapper.ToModel(progress)
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
	*progress = *e
	return nil
}

func (r *ProgressRepositoryImpl) Update(ctx context.Context, progress *entity.Progress) error {
	m, err := r.mapper.ToModel(progress)
	if err != nil {
		return err
	}
	// Save overwrites all fields: the stored grid is whatever landed last.
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	e, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*progress = *e
	return nil
}

func (r *ProgressRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.Progress{}).Error
}

func (r *ProgressRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Progress, error) {
	var m model.Progress
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}
