package controller

import (
	"notehive-be/internal/dto"
	"notehive-be/internal/pkg/serverutils"
	"notehive-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type pageController struct {
	pageService  service.IPageService
	sessionGuard fiber.Handler
}

func NewPageController(pageService service.IPageService, sessionGuard fiber.Handler) IPageController {
	return &pageController{
		pageService:  pageService,
		sessionGuard: sessionGuard,
	}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	nested := r.Group("/section/:sectionId/page")
	nested.Use(c.sessionGuard)
	nested.Post("", c.Create)
	nested.Get("", c.Index)

	h := r.Group("/page")
	h.Use(c.sessionGuard)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *pageController) Create(ctx *fiber.Ctx) error {
	sectionId, err := parseUUIDParam(ctx, "sectionId")
	if err != nil {
		return err
	}

	var req dto.CreatePageRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.pageService.Create(ctx.Context(), currentUserId(ctx), sectionId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create page", res))
}

func (c *pageController) Index(ctx *fiber.Ctx) error {
	sectionId, err := parseUUIDParam(ctx, "sectionId")
	if err != nil {
		return err
	}

	res, err := c.pageService.GetBySection(ctx.Context(), currentUserId(ctx), sectionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list pages", res))
}

func (c *pageController) Show(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.pageService.GetOne(ctx.Context(), currentUserId(ctx), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show page", res))
}

func (c *pageController) Update(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdatePageRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.pageService.Update(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update page", res))
}

func (c *pageController) Delete(ctx *fiber.Ctx) error {
	id, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.pageService.Delete(ctx.Context(), currentUserId(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete page", nil))
}
