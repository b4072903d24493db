package controller

import (
	"frontera-be/internal/dto"
	"frontera-be/internal/pkg/serverutils"
	"frontera-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Stats(ctx *fiber.Ctx) error
	ListApplications(ctx *fiber.Ctx) error
	ShowApplication(ctx *fiber.Ctx) error
	ReviewApplication(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
	LogDetail(ctx *fiber.Ctx) error
	UploadKnowledgeDoc(ctx *fiber.Ctx) error
	ListKnowledgeDocs(ctx *fiber.Ctx) error
	DeleteKnowledgeDoc(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware, serverutils.AdminOnly)
	h.Get("stats", c.Stats)
	h.Get("applications", c.ListApplications)
	h.Get("applications/:id", c.ShowApplication)
	h.Put("applications/:id/review", c.ReviewApplication)
	h.Get("logs", c.Logs)
	h.Get("logs/:id", c.LogDetail)
	h.Post("knowledge-docs", c.UploadKnowledgeDoc)
	h.Get("knowledge-docs", c.ListKnowledgeDocs)
	h.Delete("knowledge-docs/:id", c.DeleteKnowledgeDoc)
}

func (c *adminController) Stats(ctx *fiber.Ctx) error {
	res, err := c.service.GetStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get stats", res))
}

func (c *adminController) ListApplications(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.ListApplications(ctx.Context(), status, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list applications", res))
}

func (c *adminController) ShowApplication(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid application id"))
	}

	res, err := c.service.GetApplication(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show application", res))
}

func (c *adminController) ReviewApplication(ctx *fiber.Ctx) error {
	adminIdStr := ctx.Locals("user_id").(string)
	adminId, _ := uuid.Parse(adminIdStr)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid application id"))
	}

	var req dto.ReviewApplicationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ReviewApplication(ctx.Context(), adminId, id, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Application reviewed", res))
}

func (c *adminController) Logs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.GetLogs(ctx.Context(), level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}

func (c *adminController) LogDetail(ctx *fiber.Ctx) error {
	res, err := c.service.GetLogById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get log", res))
}

func (c *adminController) UploadKnowledgeDoc(ctx *fiber.Ctx) error {
	var req dto.UploadKnowledgeDocRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UploadKnowledgeDoc(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Knowledge doc queued for embedding", res))
}

func (c *adminController) ListKnowledgeDocs(ctx *fiber.Ctx) error {
	territory := ctx.Query("territory")

	res, err := c.service.ListKnowledgeDocs(ctx.Context(), territory)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list knowledge docs", res))
}

func (c *adminController) DeleteKnowledgeDoc(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid doc id"))
	}

	if err := c.service.DeleteKnowledgeDoc(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Knowledge doc deleted", nil))
}
