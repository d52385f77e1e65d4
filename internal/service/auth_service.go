package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"notehive-be/internal/apperror"
	"notehive-be/internal/config"
	"notehive-be/internal/dto"
	"notehive-be/internal/entity"
	"notehive-be/internal/pkg/mailer"
	"notehive-be/internal/pkg/token"
	"notehive-be/internal/repository/specification"
	"notehive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
	Logout(ctx context.Context, userId uuid.UUID) error
	VerifyEmail(ctx context.Context, rawToken string) (*dto.VerifyEmailResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, rawToken string, req *dto.ResetPasswordRequest) error
}

type authService struct {
	uowFactory    unitofwork.RepositoryFactory
	issuer        *token.Issuer
	mailPublisher IMailPublisher
	rotationLocks *RotationLockRegistry
	appCfg        config.AppConfig
	authCfg       config.AuthConfig
	now           func() time.Time
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	issuer *token.Issuer,
	mailPublisher IMailPublisher,
	rotationLocks *RotationLockRegistry,
	appCfg config.AppConfig,
	authCfg config.AuthConfig,
) IAuthService {
	return &authService{
		uowFactory:    uowFactory,
		issuer:        issuer,
		mailPublisher: mailPublisher,
		rotationLocks: rotationLocks,
		appCfg:        appCfg,
		authCfg:       authCfg,
		now:           time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	fullName := strings.TrimSpace(req.FullName)
	if email == "" || fullName == "" || req.Password == "" {
		return nil, apperror.NewValidation("full name, email and password are required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, apperror.NewInternal("failed to check existing account", err)
	}
	if existing != nil {
		return nil, apperror.NewConflict("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.authCfg.BcryptCost)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	verification, err := s.issuer.NewTemporary()
	if err != nil {
		return nil, apperror.NewInternal("failed to generate verification token", err)
	}

	now := s.now()
	user := &entity.User{
		Id:                         uuid.New(),
		Email:                      email,
		FullName:                   fullName,
		PasswordHash:               string(hash),
		EmailVerified:              false,
		EmailVerificationTokenHash: &verification.Hash,
		EmailVerificationExpiry:    &verification.ExpiresAt,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		// Unique index on email catches the race between the existence check
		// and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflict("email is already registered")
		}
		return nil, apperror.NewInternal("failed to create account", err)
	}

	verifyLink := s.appCfg.BaseURL + "/api/auth/verify-email/" + verification.Raw
	s.mailPublisher.Publish(dto.MailJob{
		To:      user.Email,
		Subject: "Verify your NoteHive account",
		Body:    mailer.VerificationBody(user.FullName, verifyLink),
	})

	res := dto.NewUserResponse(user)
	return &res, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, apperror.NewInternal("failed to look up account", err)
	}
	if user == nil {
		return nil, apperror.NewNotFound("account not found")
	}
	if !user.EmailVerified {
		return nil, apperror.NewForbidden("email is not verified")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperror.NewAuth("invalid credentials")
	}

	accessToken, refreshToken, err := s.issuer.NewSessionPair(user.Id)
	if err != nil {
		return nil, apperror.NewInternal("failed to issue session", err)
	}

	// Logging in replaces whatever refresh token was in the slot; older
	// sessions are cut off.
	if err := uow.UserRepository().SetRefreshToken(ctx, user.Id, refreshToken); err != nil {
		return nil, apperror.NewInternal("failed to store refresh token", err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	if refreshToken == "" {
		return nil, apperror.NewAuth("missing refresh token")
	}

	userId, err := s.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, apperror.NewAuth("invalid or expired refresh token")
	}

	// Concurrent refreshes for the same user are sequenced so exactly one
	// rotation wins.
	mu := s.rotationLocks.Acquire(userId)
	defer mu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.NewInternal("failed to look up account", err)
	}
	if user == nil {
		return nil, apperror.NewAuth("session user no longer exists")
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		// A valid signature that no longer matches the slot means the token
		// was already rotated: treat it as reuse and revoke the session.
		if err := uow.UserRepository().ClearRefreshToken(ctx, userId); err != nil {
			return nil, apperror.NewInternal("failed to revoke session", err)
		}
		return nil, apperror.NewAuth("refresh token has already been used")
	}

	accessToken, nextRefreshToken, err := s.issuer.NewSessionPair(userId)
	if err != nil {
		return nil, apperror.NewInternal("failed to issue session", err)
	}

	rotated, err := uow.UserRepository().RotateRefreshToken(ctx, userId, refreshToken, nextRefreshToken)
	if err != nil {
		return nil, apperror.NewInternal("failed to rotate refresh token", err)
	}
	if !rotated {
		return nil, apperror.NewAuth("refresh token has already been used")
	}

	return &dto.RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: nextRefreshToken,
	}, nil
}

func (s *authService) Logout(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UserRepository().ClearRefreshToken(ctx, userId); err != nil {
		return apperror.NewInternal("failed to clear session", err)
	}
	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, rawToken string) (*dto.VerifyEmailResponse, error) {
	if rawToken == "" {
		return nil, apperror.NewInvalidToken("verification token is invalid or expired")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx,
		specification.ByVerificationTokenHash{Hash: token.Hash(rawToken)},
		specification.VerificationNotExpired{Now: s.now()},
	)
	if err != nil {
		return nil, apperror.NewInternal("failed to look up verification token", err)
	}
	if user == nil {
		return nil, apperror.NewInvalidToken("verification token is invalid or expired")
	}

	// Clears the token hash along the way, so the link is single-use.
	if err := uow.UserRepository().MarkEmailVerified(ctx, user.Id); err != nil {
		return nil, apperror.NewInternal("failed to verify email", err)
	}

	return &dto.VerifyEmailResponse{EmailVerified: true}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return apperror.NewInternal("failed to look up account", err)
	}
	if user == nil {
		return apperror.NewNotFound("account not found")
	}

	reset, err := s.issuer.NewTemporary()
	if err != nil {
		return apperror.NewInternal("failed to generate reset token", err)
	}

	if err := uow.UserRepository().SetPasswordResetToken(ctx, user.Id, reset.Hash, reset.ExpiresAt); err != nil {
		return apperror.NewInternal("failed to store reset token", err)
	}

	resetLink := s.appCfg.ClientURL + "/reset-password/" + reset.Raw
	s.mailPublisher.Publish(dto.MailJob{
		To:      user.Email,
		Subject: "Reset your NoteHive password",
		Body:    mailer.ResetBody(user.FullName, resetLink),
	})

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, rawToken string, req *dto.ResetPasswordRequest) error {
	if strings.TrimSpace(req.NewPassword) == "" {
		return apperror.NewValidation("new password is required")
	}
	if rawToken == "" {
		return apperror.NewInvalidToken("reset token is invalid or expired")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx,
		specification.ByResetTokenHash{Hash: token.Hash(rawToken)},
		specification.ResetNotExpired{Now: s.now()},
	)
	if err != nil {
		return apperror.NewInternal("failed to look up reset token", err)
	}
	if user == nil {
		return apperror.NewInvalidToken("reset token is invalid or expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.authCfg.BcryptCost)
	if err != nil {
		return apperror.NewInternal("failed to hash password", err)
	}

	// Consumes the reset token and, by clearing the refresh slot, revokes
	// every live session.
	if err := uow.UserRepository().UpdatePassword(ctx, user.Id, string(hash)); err != nil {
		return apperror.NewInternal("failed to update password", err)
	}
	if err := uow.UserRepository().ClearRefreshToken(ctx, user.Id); err != nil {
		return apperror.NewInternal("failed to revoke sessions", err)
	}

	return nil
}
