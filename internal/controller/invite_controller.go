package controller

import (
	"crossword-collab-be/internal/dto"
	"crossword-collab-be/internal/pkg/serverutils"
	"crossword-collab-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInviteController interface {
	RegisterRoutes(r fiber.Router)
	Accept(ctx *fiber.Ctx) error
}

type inviteController struct {
	inviteService service.IInviteService
}

func NewInviteController(inviteService service.IInviteService) IInviteController {
	return &inviteController{
		inviteService: inviteService,
	}
}

func (c *inviteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/invite/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("accept", c.Accept)
}

func (c *inviteController) Accept(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.AcceptInviteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.inviteService.Accept(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success accept invite", res))
}
