package implementation

import (
	"context"
	"errors"
	"time"

	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/mapper"
	"crossword-collab-be/internal/model"
	"crossword-collab-be/internal/repository/contract"
	"crossword-collab-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ParticipantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ParticipantMapper
}

func NewParticipantRepository(db *gorm.DB) contract.ParticipantRepository {
	return &ParticipantRepositoryImpl{
		db:     db,
		mapper: mapper.NewParticipantMapper(),
	}
}

func (r *ParticipantRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Create inserts a membership row. Enrollment must be idempotent, so a
// conflict on (session_id, user_id) is ignored rather than surfaced.
func (r *ParticipantRepositoryImpl) Create(ctx context.Context, participant *entity.Participant) error {
	m := r.mapper.ToModel(participant)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*participant = *r.mapper.ToEntity(m)
	return nil
}

func (r *ParticipantRepositoryImpl) Touch(ctx context.Context, sessionId, userId uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Participant{}).
		Where("session_id = ? AND user_id = ?", sessionId, userId).
		Update("last_active_at", at).Error
}

func (r *ParticipantRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.Participant{}).Error
}

func (r *ParticipantRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Participant, error) {
	var m model.Participant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ParticipantRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Participant, error) {
	var models []*model.Participant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ParticipantRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Participant{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
