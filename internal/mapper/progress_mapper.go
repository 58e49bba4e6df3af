package mapper

import (
	"encoding/json"
	"time"

	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/model"
	"crossword-collab-be/pkg/crossword"
)

type ProgressMapper struct{}

func NewProgressMapper() *ProgressMapper {
	return &ProgressMapper{}
}

func (m *ProgressMapper) ToEntity(p *model.Progress) (*entity.Progress, error) {
	if p == nil {
		return nil, nil
	}

	var grid crossword.Grid
	if err := json.Unmarshal(p.Grid, &grid); err != nil {
		return nil, err
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Progress{
		Id:              p.Id,
		SessionId:       p.SessionId,
		Grid:            grid,
		LastUpdatedById: p.LastUpdatedById,
		SubmittedAt:     p.SubmittedAt,
		UpdatedAt:       updatedAt,
		CreatedAt:       p.CreatedAt,
	}, nil
}

func (m *ProgressMapper) ToModel(p *entity.Progress) (*model.Progress, error) {
	if p == nil {
		return nil, nil
	}

	grid, err := json.Marshal(p.Grid)
	if err != nil {
		return nil, err
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Progress{
		Id:              p.Id,
		SessionId:       p.SessionId,
		Grid:            grid,
		LastUpdatedById: p.LastUpdatedById,
		SubmittedAt:     p.SubmittedAt,
		UpdatedAt:       updatedAt,
		CreatedAt:       p.CreatedAt,
	}, nil
}
