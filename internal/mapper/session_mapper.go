package mapper

import (
	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	return &entity.Session{
		Id:            s.Id,
		PuzzleId:      s.PuzzleId,
		OwnerId:       s.OwnerId,
		Collaborative: s.Collaborative,
		Difficulty:    s.Difficulty,
		CreatedAt:     s.CreatedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}

	return &model.Session{
		Id:            s.Id,
		PuzzleId:      s.PuzzleId,
		OwnerId:       s.OwnerId,
		Collaborative: s.Collaborative,
		Difficulty:    s.Difficulty,
		CreatedAt:     s.CreatedAt,
	}
}

func (m *SessionMapper) ToEntities(sessions []*model.Session) []*entity.Session {
	entities := make([]*entity.Session, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
