package controller

import (
	"errors"

	"frontera-be/internal/dto"
	"frontera-be/internal/pkg/serverutils"
	"frontera-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBetController interface {
	RegisterRoutes(r fiber.Router)
	CreateBet(ctx *fiber.Ctx) error
	UpdateBet(ctx *fiber.Ctx) error
	DeleteBet(ctx *fiber.Ctx) error
	ListBets(ctx *fiber.Ctx) error
	CreateThesis(ctx *fiber.Ctx) error
	ListTheses(ctx *fiber.Ctx) error
	DeleteThesis(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type betController struct {
	service service.IBetService
}

func NewBetController(service service.IBetService) IBetController {
	return &betController{service: service}
}

func (c *betController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bets/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.CreateBet)
	h.Get("", c.ListBets)
	h.Put(":id", c.UpdateBet)
	h.Delete(":id", c.DeleteBet)
	h.Post("theses", c.CreateThesis)
	h.Get("theses", c.ListTheses)
	h.Delete("theses/:id", c.DeleteThesis)
	h.Post("export", c.Export)
}

func (c *betController) CreateBet(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateBetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateBet(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create bet", res))
}

func (c *betController) UpdateBet(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid bet id"))
	}

	var req dto.UpdateBetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateBet(ctx.Context(), userId, id, &req)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update bet", res))
}

func (c *betController) DeleteBet(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid bet id"))
	}

	if err := c.service.DeleteBet(ctx.Context(), userId, id); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete bet", nil))
}

func (c *betController) ListBets(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.ListBets(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list bets", res))
}

func (c *betController) CreateThesis(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateThesisRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateThesis(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create thesis", res))
}

func (c *betController) ListTheses(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.ListTheses(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list theses", res))
}

func (c *betController) DeleteThesis(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid thesis id"))
	}

	if err := c.service.DeleteThesis(ctx.Context(), userId, id); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete thesis", nil))
}

func (c *betController) Export(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.ExportPortfolio(ctx.Context(), userId)
	if err != nil {
		var blocked *service.ErrExportBlocked
		if errors.As(err, &blocked) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"code":    fiber.StatusConflict,
				"message": "Portfolio not ready for export",
				"data":    dto.ExportBlockedResponse{Reasons: blocked.Reasons},
			})
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Portfolio exported", res))
}
