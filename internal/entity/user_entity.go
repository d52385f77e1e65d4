package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity aggregate. The refresh-token slot holds at most one
// valid token; a presented refresh token that does not match the stored value
// is treated as reuse. Temporary tokens are persisted as sha256 digests only.
type User struct {
	Id            uuid.UUID
	Email         string
	PasswordHash  string
	FullName      string
	EmailVerified bool

	AvatarURL    *string
	AvatarBlobId *string

	RefreshToken *string

	EmailVerificationTokenHash *string
	EmailVerificationExpiry    *time.Time

	PasswordResetTokenHash *string
	PasswordResetExpiry    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sanitized returns a copy with credential material stripped, safe to attach
// to a request context or serialize into a response.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	clone.RefreshToken = nil
	clone.EmailVerificationTokenHash = nil
	clone.EmailVerificationExpiry = nil
	clone.PasswordResetTokenHash = nil
	clone.PasswordResetExpiry = nil
	return &clone
}
