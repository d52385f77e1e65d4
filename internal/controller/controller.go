package controller

import (
	"notehive-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// currentUserId reads the identity attached by the session guard.
func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

// parseBody rejects malformed request bodies as a validation failure
// instead of surfacing fiber's parse error as an internal one.
func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	return nil
}

func parseUUIDParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, apperror.NewValidation("invalid " + name)
	}
	return id, nil
}
