package controller

import (
	"notehive-be/internal/dto"
	"notehive-be/internal/pkg/serverutils"
	"notehive-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISectionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type sectionController struct {
	sectionService service.ISectionService
	sessionGuard   fiber.Handler
}

func NewSectionController(sectionService service.ISectionService, sessionGuard fiber.Handler) ISectionController {
	return &sectionController{
		sectionService: sectionService,
		sessionGuard:   sessionGuard,
	}
}

func (c *sectionController) RegisterRoutes(r fiber.Router) {
	nested := r.Group("/notebook/:notebookId/section")
	nested.Use(c.sessionGuard)
	nested.Post("", c.Create)
	nested.Get("", c.Index)

	h := r.Group("/section")
	h.Use(c.sessionGuard)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *sectionController) Create(ctx *fiber.Ctx) error {
	notebookId, err := parseUUIDParam(ctx, "notebookId")
	if err != nil {
		return err
	}

	var req dto.CreateSectionRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.sectionService.Create(ctx.Context(), currentUserId(ctx), notebookId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create section", res))
}

func (c *sectionController) Index(ctx *fiber.Ctx) error {
	notebookId, err := parseUUIDParam(ctx, "notebookId")
	if err != nil {
		return err
	}

	res, err := c.sectionService.GetByNotebook(ctx.Context(), currentUserId(ctx), notebookId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list sections", res))
}

func (c *sectionController) Update(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateSectionRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sectionService.Update(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update section", res))
}

func (c *sectionController) Delete(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.sectionService.Delete(ctx.Context(), currentUserId(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete section", nil))
}
