package controller

import (
	"time"

	"notehive-be/internal/dto"
	"notehive-be/internal/pkg/serverutils"
	"notehive-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const refreshTokenCookie = "refresh_token"

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	VerifyEmail(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	ForgotPassword(ctx *fiber.Ctx) error
	ResetPassword(ctx *fiber.Ctx) error
}

type authController struct {
	authService  service.IAuthService
	sessionGuard fiber.Handler
	cookieSecure bool
	refreshTTL   time.Duration
	accessTTL    time.Duration
}

func NewAuthController(authService service.IAuthService, sessionGuard fiber.Handler, cookieSecure bool, accessTTL, refreshTTL time.Duration) IAuthController {
	return &authController{
		authService:  authService,
		sessionGuard: sessionGuard,
		cookieSecure: cookieSecure,
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Get("/verify-email/:token", c.VerifyEmail)
	h.Post("/login", c.Login)
	h.Post("/refresh", c.Refresh)
	h.Post("/logout", c.sessionGuard, c.Logout)
	h.Post("/forgot-password", c.ForgotPassword)
	h.Post("/reset-password/:token", c.ResetPassword)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Account registered, check your inbox to verify your email", res))
}

func (c *authController) VerifyEmail(ctx *fiber.Ctx) error {
	res, err := c.authService.VerifyEmail(ctx.Context(), ctx.Params("token"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Email verified successfully", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	c.setSessionCookies(ctx, res.AccessToken, res.RefreshToken)
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Refresh(ctx *fiber.Ctx) error {
	// The cookie wins over the body fallback.
	refreshToken := ctx.Cookies(refreshTokenCookie)
	if refreshToken == "" {
		var req dto.RefreshRequest
		if err := ctx.BodyParser(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}

	res, err := c.authService.Refresh(ctx.Context(), refreshToken)
	if err != nil {
		return err
	}

	c.setSessionCookies(ctx, res.AccessToken, res.RefreshToken)
	return ctx.JSON(serverutils.SuccessResponse("Session refreshed", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	if err := c.authService.Logout(ctx.Context(), userId); err != nil {
		return err
	}

	c.clearSessionCookies(ctx)
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}

func (c *authController) ForgotPassword(ctx *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.authService.ForgotPassword(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Reset link sent", nil))
}

func (c *authController) ResetPassword(ctx *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.authService.ResetPassword(ctx.Context(), ctx.Params("token"), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password updated, please log in again", nil))
}

func (c *authController) setSessionCookies(ctx *fiber.Ctx, accessToken, refreshToken string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.AccessTokenCookie,
		Value:    accessToken,
		Expires:  time.Now().Add(c.accessTTL),
		HTTPOnly: true,
		Secure:   c.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	ctx.Cookie(&fiber.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Expires:  time.Now().Add(c.refreshTTL),
		HTTPOnly: true,
		Secure:   c.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (c *authController) clearSessionCookies(ctx *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	ctx.Cookie(&fiber.Cookie{Name: serverutils.AccessTokenCookie, Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	ctx.Cookie(&fiber.Cookie{Name: refreshTokenCookie, Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
}
