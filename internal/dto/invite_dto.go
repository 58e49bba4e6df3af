package dto

import "github.com/google/uuid"

type CreateInviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CreateInviteResponse struct {
	Id    uuid.UUID `json:"id"`
	Token string    `json:"token"`
}

type AcceptInviteRequest struct {
	Token string `json:"token" validate:"required"`
}

type AcceptInviteResponse struct {
	SessionId uuid.UUID `json:"session_id"`
}
