package controller

import (
	"io"

	"notehive-be/internal/apperror"
	"notehive-be/internal/dto"
	"notehive-be/internal/entity"
	"notehive-be/internal/pkg/serverutils"
	"notehive-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Me(ctx *fiber.Ctx) error
	UpdateAvatar(ctx *fiber.Ctx) error
}

type userController struct {
	userService  service.IUserService
	sessionGuard fiber.Handler
}

func NewUserController(userService service.IUserService, sessionGuard fiber.Handler) IUserController {
	return &userController{
		userService:  userService,
		sessionGuard: sessionGuard,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user")
	h.Use(c.sessionGuard)
	h.Get("/me", c.Me)
	h.Put("/avatar", c.UpdateAvatar)
}

// Me serves the identity the session guard already loaded and attached, so
// no second lookup happens here.
func (c *userController) Me(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(*entity.User)
	if !ok {
		return apperror.NewAuth("missing session identity")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get profile", dto.NewUserResponse(user)))
}

func (c *userController) UpdateAvatar(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		return apperror.NewValidation("avatar file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperror.NewInternal("failed to open uploaded file", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return apperror.NewInternal("failed to read uploaded file", err)
	}

	res, err := c.userService.UpdateAvatar(ctx.Context(), userId, fileHeader.Filename, data)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update avatar", res))
}
