package serverutils

import (
	"strings"

	"notehive-be/internal/apperror"
	"notehive-be/internal/pkg/token"
	"notehive-be/internal/repository/contract"
	"notehive-be/internal/repository/specification"

	"github.com/gofiber/fiber/v2"
)

// AccessTokenCookie is also set on login and refresh; the cookie takes
// precedence over the Authorization header when both are present.
const AccessTokenCookie = "access_token"

// SessionGuard verifies the access token and attaches the authenticated
// identity to the request via Locals("user_id") and Locals("user"). Handlers
// never read tokens themselves.
func SessionGuard(issuer *token.Issuer, userRepository contract.UserRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := extractBearer(ctx)
		if tokenStr == "" {
			return apperror.NewAuth("missing access token")
		}

		userId, err := issuer.VerifyAccess(tokenStr)
		if err != nil {
			return apperror.NewAuth("invalid or expired access token")
		}

		user, err := userRepository.FindOne(ctx.Context(), specification.ByID{ID: userId})
		if err != nil {
			return apperror.From(err)
		}
		if user == nil {
			return apperror.NewAuth("session user no longer exists")
		}

		ctx.Locals("user_id", user.Id.String())
		ctx.Locals("user", user.Sanitized())
		return ctx.Next()
	}
}

func extractBearer(ctx *fiber.Ctx) string {
	if cookie := ctx.Cookies(AccessTokenCookie); cookie != "" {
		return cookie
	}
	authHeader := ctx.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
