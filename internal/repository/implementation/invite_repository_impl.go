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

type InviteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InviteMapper
}

func NewInviteRepository(db *gorm.DB) contract.InviteRepository {
	return &InviteRepositoryImpl{
		db:     db,
		mapper: mapper.NewInviteMapper(),
	}
}

func (r *InviteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InviteRepositoryImpl) Create(ctx context.Context, invite *entity.SessionInvite) error {
	m := r.mapper.ToModel(invite)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*invite = *r.mapper.ToEntity(m)
	return nil
}

func (r *InviteRepositoryImpl) Update(ctx context.Context, invite *entity.SessionInvite) error {
	m := r.mapper.ToModel(invite)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*invite = *r.mapper.ToEntity(m)
	return nil
}

func (r *InviteRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.SessionInvite{}).Error
}

func (r *InviteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionInvite, error) {
	var m model.SessionInvite
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *InviteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionInvite, error) {
	var models []*model.SessionInvite
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.SessionInvite, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
