package token_test

import (
	"testing"
	"time"

	"notehive-be/internal/config"
	"notehive-be/internal/pkg/token"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AccessTokenSecret:  "access-secret",
		RefreshTokenSecret: "refresh-secret",
		AccessTokenTTL:     time.Hour,
		RefreshTokenTTL:    24 * time.Hour,
		TempTokenTTL:       20 * time.Minute,
	}
}

func TestIssuer_SessionPair(t *testing.T) {
	issuer := token.NewIssuer(testAuthConfig())
	userId := uuid.New()

	t.Run("round trips both tokens", func(t *testing.T) {
		access, refresh, err := issuer.NewSessionPair(userId)
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)

		gotAccess, err := issuer.VerifyAccess(access)
		require.NoError(t, err)
		assert.Equal(t, userId, gotAccess)

		gotRefresh, err := issuer.VerifyRefresh(refresh)
		require.NoError(t, err)
		assert.Equal(t, userId, gotRefresh)
	})

	t.Run("token classes are not interchangeable", func(t *testing.T) {
		access, refresh, err := issuer.NewSessionPair(userId)
		require.NoError(t, err)

		_, err = issuer.VerifyAccess(refresh)
		assert.ErrorIs(t, err, token.ErrInvalidToken)

		_, err = issuer.VerifyRefresh(access)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("successive refresh tokens are distinct", func(t *testing.T) {
		_, first, err := issuer.NewSessionPair(userId)
		require.NoError(t, err)
		_, second, err := issuer.NewSessionPair(userId)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("rejects expired access token", func(t *testing.T) {
		frozen := time.Now()
		clock := token.NewIssuer(testAuthConfig()).WithClock(func() time.Time { return frozen })

		access, _, err := clock.NewSessionPair(userId)
		require.NoError(t, err)

		clock.WithClock(func() time.Time { return frozen.Add(2 * time.Hour) })
		_, err = clock.VerifyAccess(access)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := issuer.VerifyAccess("not-a-jwt")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}

func TestIssuer_Temporary(t *testing.T) {
	issuer := token.NewIssuer(testAuthConfig())

	t.Run("hash matches raw digest", func(t *testing.T) {
		temp, err := issuer.NewTemporary()
		require.NoError(t, err)
		assert.Len(t, temp.Raw, 64)
		assert.Equal(t, token.Hash(temp.Raw), temp.Hash)
		assert.NotEqual(t, temp.Raw, temp.Hash)
	})

	t.Run("expiry honors configured ttl", func(t *testing.T) {
		frozen := time.Now()
		clock := token.NewIssuer(testAuthConfig()).WithClock(func() time.Time { return frozen })

		temp, err := clock.NewTemporary()
		require.NoError(t, err)
		assert.Equal(t, frozen.Add(20*time.Minute), temp.ExpiresAt)
	})

	t.Run("two tokens never collide", func(t *testing.T) {
		first, err := issuer.NewTemporary()
		require.NoError(t, err)
		second, err := issuer.NewTemporary()
		require.NoError(t, err)
		assert.NotEqual(t, first.Raw, second.Raw)
	})
}
