package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"notehive-be/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("token is invalid or expired")
)

// Issuer mints the two token classes: signed session pairs (access +
// rotating refresh, independent secrets) and random single-use temporary
// tokens of which only the sha256 digest is ever persisted.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	tempTTL       time.Duration
	now           func() time.Time
}

func NewIssuer(cfg config.AuthConfig) *Issuer {
	return &Issuer{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
		tempTTL:       cfg.TempTokenTTL,
		now:           time.Now,
	}
}

// WithClock overrides the time source, used by tests to force expiry.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// NewSessionPair mints an access and a refresh token for the user. The
// refresh token carries a fresh jti so every rotation produces a distinct
// value even within the same second.
func (i *Issuer) NewSessionPair(userId uuid.UUID) (string, string, error) {
	accessToken, err := i.sign(userId, i.accessSecret, i.accessTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := i.sign(userId, i.refreshSecret, i.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (i *Issuer) sign(userId uuid.UUID, secret []byte, ttl time.Duration) (string, error) {
	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   userId.String(),
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func (i *Issuer) VerifyAccess(tokenStr string) (uuid.UUID, error) {
	return i.verify(tokenStr, i.accessSecret)
}

func (i *Issuer) VerifyRefresh(tokenStr string) (uuid.UUID, error) {
	return i.verify(tokenStr, i.refreshSecret)
}

func (i *Issuer) verify(tokenStr string, secret []byte) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !t.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userId, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userId, nil
}

// Temporary is a single-use token pair: Raw goes into the mail link and is
// never stored or logged, Hash and ExpiresAt go into storage.
type Temporary struct {
	Raw       string
	Hash      string
	ExpiresAt time.Time
}

func (i *Issuer) NewTemporary() (*Temporary, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	raw := hex.EncodeToString(buf)

	return &Temporary{
		Raw:       raw,
		Hash:      Hash(raw),
		ExpiresAt: i.now().Add(i.tempTTL),
	}, nil
}

// Hash is the one-way digest applied to temporary tokens before storage and
// again at lookup time.
func Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
