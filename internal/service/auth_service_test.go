package service_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"notehive-be/internal/apperror"
	"notehive-be/internal/dto"
	"notehive-be/internal/repository/memory"
	"notehive-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates unverified account and mails a verification link", func(t *testing.T) {
		f := newFixture(t)

		user, err := f.auth.Register(ctx, &dto.RegisterRequest{
			FullName: "Ada Lovelace",
			Email:    "Ada@Example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.False(t, user.EmailVerified)

		job := f.publisher.last(t)
		assert.Equal(t, "ada@example.com", job.To)
		assert.Contains(t, job.Body, "/api/auth/verify-email/")
	})

	t.Run("rejects duplicate email regardless of case", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.auth.Register(ctx, &dto.RegisterRequest{FullName: "A", Email: "dup@example.com", Password: "pw"})
		require.NoError(t, err)

		_, err = f.auth.Register(ctx, &dto.RegisterRequest{FullName: "B", Email: "DUP@example.com", Password: "pw"})
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	})

	t.Run("concurrent registrations with the same email admit at most one", func(t *testing.T) {
		f := newFixture(t)

		var successes int32
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.auth.Register(ctx, &dto.RegisterRequest{
					FullName: "Racer",
					Email:    "race@example.com",
					Password: "pw",
				})
				if err == nil {
					atomic.AddInt32(&successes, 1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), successes)
	})

	t.Run("rejects blank fields", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.auth.Register(ctx, &dto.RegisterRequest{FullName: "  ", Email: "x@example.com", Password: "pw"})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})
}

func TestAuthService_VerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("token verifies once and only once", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.auth.Register(ctx, &dto.RegisterRequest{FullName: "A", Email: "a@example.com", Password: "pw"})
		require.NoError(t, err)
		raw := f.publisher.lastMailToken(t)

		res, err := f.auth.VerifyEmail(ctx, raw)
		require.NoError(t, err)
		assert.True(t, res.EmailVerified)

		_, err = f.auth.VerifyEmail(ctx, raw)
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidToken))
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.auth.VerifyEmail(ctx, "deadbeef")
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidToken))
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.auth.Register(ctx, &dto.RegisterRequest{FullName: "A", Email: "a@example.com", Password: "pw"})
		require.NoError(t, err)
		raw := f.publisher.lastMailToken(t)

		users := memory.NewUserRepository(f.store)
		stored, err := users.FindOne(ctx, specification.ByEmail{Email: "a@example.com"})
		require.NoError(t, err)
		require.NotNil(t, stored)
		past := time.Now().Add(-time.Minute)
		stored.EmailVerificationExpiry = &past
		require.NoError(t, users.Update(ctx, stored))

		_, err = f.auth.VerifyEmail(ctx, raw)
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidToken))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("unverified account cannot log in", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.auth.Register(ctx, &dto.RegisterRequest{FullName: "A", Email: "a@example.com", Password: "pw"})
		require.NoError(t, err)

		_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "pw"})
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})

	t.Run("verified account gets a session pair", func(t *testing.T) {
		f := newFixture(t)
		f.registerVerified(t, "a@example.com", "pw")

		res, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "pw"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
		assert.Equal(t, "a@example.com", res.User.Email)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		f := newFixture(t)
		f.registerVerified(t, "a@example.com", "pw")

		_, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "nope"})
		assert.True(t, apperror.IsKind(err, apperror.KindAuth))
	})

	t.Run("unknown account is not found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "pw"})
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("rotation invalidates the previous token", func(t *testing.T) {
		f := newFixture(t)
		f.registerVerified(t, "a@example.com", "pw")

		login, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "pw"})
		require.NoError(t, err)

		first, err := f.auth.Refresh(ctx, login.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, login.RefreshToken, first.RefreshToken)

		// Replaying the consumed token must fail.
		_, err = f.auth.Refresh(ctx, login.RefreshToken)
		assert.True(t, apperror.IsKind(err, apperror.KindAuth))

		// And the reuse revoked the whole session: the rotated token is dead too.
		_, err = f.auth.Refresh(ctx, first.RefreshToken)
		assert.True(t, apperror.IsKind(err, apperror.KindAuth))
	})

	t.Run("concurrent refreshes admit exactly one rotation", func(t *testing.T) {
		f := newFixture(t)
		f.registerVerified(t, "a@example.com", "pw")

		login, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "pw"})
		require.NoError(t, err)

		var successes int32
		var wg sync.WaitGroup
		for i := 0; i < 6; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := f.auth.Refresh(ctx, login.RefreshToken); err == nil {
					atomic.AddInt32(&successes, 1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), successes)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.auth.Refresh(ctx, "not-a-token")
		assert.True(t, apperror.IsKind(err, apperror.KindAuth))
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("logout revokes the refresh token and is idempotent", func(t *testing.T) {
		f := newFixture(t)
		user := f.registerVerified(t, "a@example.com", "pw")

		login, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "pw"})
		require.NoError(t, err)

		require.NoError(t, f.auth.Logout(ctx, user.Id))

		_, err = f.auth.Refresh(ctx, login.RefreshToken)
		assert.True(t, apperror.IsKind(err, apperror.KindAuth))

		// Logging out again is a no-op, not an error.
		require.NoError(t, f.auth.Logout(ctx, user.Id))
	})
}

func TestAuthService_PasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("full forgot and reset round trip", func(t *testing.T) {
		f := newFixture(t)
		f.registerVerified(t, "a@example.com", "oldpw")

		require.NoError(t, f.auth.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "a@example.com"}))
		raw := f.publisher.lastMailToken(t)

		require.NoError(t, f.auth.ResetPassword(ctx, raw, &dto.ResetPasswordRequest{NewPassword: "newpw"}))

		_, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "oldpw"})
		assert.True(t, apperror.IsKind(err, apperror.KindAuth))

		_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "newpw"})
		assert.NoError(t, err)
	})

	t.Run("reset revokes live sessions", func(t *testing.T) {
		f := newFixture(t)
		f.registerVerified(t, "a@example.com", "oldpw")

		login, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "a@example.com", Password: "oldpw"})
		require.NoError(t, err)

		require.NoError(t, f.auth.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "a@example.com"}))
		require.NoError(t, f.auth.ResetPassword(ctx, f.publisher.lastMailToken(t), &dto.ResetPasswordRequest{NewPassword: "newpw"}))

		_, err = f.auth.Refresh(ctx, login.RefreshToken)
		assert.True(t, apperror.IsKind(err, apperror.KindAuth))
	})

	t.Run("reset token is single use", func(t *testing.T) {
		f := newFixture(t)
		f.registerVerified(t, "a@example.com", "pw")

		require.NoError(t, f.auth.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "a@example.com"}))
		raw := f.publisher.lastMailToken(t)

		require.NoError(t, f.auth.ResetPassword(ctx, raw, &dto.ResetPasswordRequest{NewPassword: "newpw"}))
		err := f.auth.ResetPassword(ctx, raw, &dto.ResetPasswordRequest{NewPassword: "again"})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidToken))
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.registerVerified(t, "a@example.com", "pw")

		require.NoError(t, f.auth.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "a@example.com"}))

		err := f.auth.ResetPassword(ctx, "0000000000000000000000000000000000000000000000000000000000000000", &dto.ResetPasswordRequest{NewPassword: "newpw"})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidToken))
	})

	t.Run("expired reset token is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.registerVerified(t, "a@example.com", "pw")

		require.NoError(t, f.auth.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "a@example.com"}))
		raw := f.publisher.lastMailToken(t)

		users := memory.NewUserRepository(f.store)
		stored, err := users.FindOne(ctx, specification.ByEmail{Email: "a@example.com"})
		require.NoError(t, err)
		require.NotNil(t, stored)
		past := time.Now().Add(-time.Minute)
		stored.PasswordResetExpiry = &past
		require.NoError(t, users.Update(ctx, stored))

		err = f.auth.ResetPassword(ctx, raw, &dto.ResetPasswordRequest{NewPassword: "newpw"})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidToken))
	})

	t.Run("empty new password is invalid", func(t *testing.T) {
		f := newFixture(t)
		f.registerVerified(t, "a@example.com", "pw")

		require.NoError(t, f.auth.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "a@example.com"}))
		raw := f.publisher.lastMailToken(t)

		err := f.auth.ResetPassword(ctx, raw, &dto.ResetPasswordRequest{NewPassword: "   "})
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		f := newFixture(t)
		err := f.auth.ForgotPassword(ctx, &dto.ForgotPasswordRequest{Email: "ghost@example.com"})
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}
