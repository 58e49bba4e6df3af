package controller

import (
	"crossword-collab-be/internal/pkg/serverutils"
	"crossword-collab-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPuzzleController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type puzzleController struct {
	puzzleService service.IPuzzleService
}

func NewPuzzleController(puzzleService service.IPuzzleService) IPuzzleController {
	return &puzzleController{
		puzzleService: puzzleService,
	}
}

func (c *puzzleController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/puzzle/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
}

func (c *puzzleController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.puzzleService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get puzzles", res))
}

func (c *puzzleController) Show(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.puzzleService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show puzzle", res))
}
