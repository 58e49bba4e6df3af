package mapper

import (
	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/model"
)

type ParticipantMapper struct{}

func NewParticipantMapper() *ParticipantMapper {
	return &ParticipantMapper{}
}

func (m *ParticipantMapper) ToEntity(p *model.Participant) *entity.Participant {
	if p == nil {
		return nil
	}

	return &entity.Participant{
		Id:           p.Id,
		SessionId:    p.SessionId,
		UserId:       p.UserId,
		JoinedAt:     p.JoinedAt,
		LastActiveAt: p.LastActiveAt,
	}
}

func (m *ParticipantMapper) ToModel(p *entity.Participant) *model.Participant {
	if p == nil {
		return nil
	}

	return &model.Participant{
		Id:           p.Id,
		SessionId:    p.SessionId,
		UserId:       p.UserId,
		JoinedAt:     p.JoinedAt,
		LastActiveAt: p.LastActiveAt,
	}
}

func (m *ParticipantMapper) ToEntities(participants []*model.Participant) []*entity.Participant {
	entities := make([]*entity.Participant, len(participants))
	for i, p := range participants {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
