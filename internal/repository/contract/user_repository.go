package contract

import (
	"context"
	"time"

	"notehive-be/internal/entity"
	"notehive-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)

	// Refresh-token slot management. RotateRefreshToken is a compare-and-swap:
	// the update only lands when the stored slot still holds previous, and the
	// boolean reports whether it did.
	SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error
	RotateRefreshToken(ctx context.Context, id uuid.UUID, previous, next string) (bool, error)
	ClearRefreshToken(ctx context.Context, id uuid.UUID) error

	// Temporary-token lifecycle.
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
	SetPasswordResetToken(ctx context.Context, id uuid.UUID, hash string, expiry time.Time) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	UpdateAvatar(ctx context.Context, id uuid.UUID, url, blobId string) error
}
