package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// Temporary-token specs. Lookups are indexed equality on the digest; the
// expiry bound rides along so a consumed or stale token never matches.

type ByVerificationTokenHash struct {
	Hash string
}

func (s ByVerificationTokenHash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email_verification_token_hash = ?", s.Hash)
}

type VerificationNotExpired struct {
	Now time.Time
}

func (s VerificationNotExpired) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email_verification_expiry > ?", s.Now)
}

type ByResetTokenHash struct {
	Hash string
}

func (s ByResetTokenHash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("password_reset_token_hash = ?", s.Hash)
}

type ResetNotExpired struct {
	Now time.Time
}

func (s ResetNotExpired) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("password_reset_expiry > ?", s.Now)
}
