package serverutils

import (
	"notehive-be/internal/apperror"
	"notehive-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts any error bubbling out of a handler into
// the standard envelope. Internal errors are logged with their cause; the
// response carries only the sanitized message.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		appErr := apperror.From(err)
		if appErr.Kind == apperror.KindInternal {
			details := map[string]interface{}{
				"path":   ctx.Path(),
				"method": ctx.Method(),
			}
			if appErr.Err != nil {
				details["error"] = appErr.Err.Error()
			}
			log.Error("http", "request failed", details)
		}

		return ctx.Status(appErr.Status()).JSON(ErrorResponse(appErr.Status(), appErr.Message))
	}
}
