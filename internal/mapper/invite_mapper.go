package mapper

import (
	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/model"
)

type InviteMapper struct{}

func NewInviteMapper() *InviteMapper {
	return &InviteMapper{}
}

func (m *InviteMapper) ToEntity(i *model.SessionInvite) *entity.SessionInvite {
	if i == nil {
		return nil
	}

	return &entity.SessionInvite{
		Id:         i.Id,
		SessionId:  i.SessionId,
		InviterId:  i.InviterId,
		Email:      i.Email,
		Token:      i.Token,
		AcceptedAt: i.AcceptedAt,
		CreatedAt:  i.CreatedAt,
	}
}

func (m *InviteMapper) ToModel(i *entity.SessionInvite) *model.SessionInvite {
	if i == nil {
		return nil
	}

	return &model.SessionInvite{
		Id:         i.Id,
		SessionId:  i.SessionId,
		InviterId:  i.InviterId,
		Email:      i.Email,
		Token:      i.Token,
		AcceptedAt: i.AcceptedAt,
		CreatedAt:  i.CreatedAt,
	}
}
