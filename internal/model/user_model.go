package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	FullName      string    `gorm:"type:varchar(255);not null"`
	EmailVerified bool      `gorm:"default:false"`

	AvatarURL    *string `gorm:"type:text"`
	AvatarBlobId *string `gorm:"type:varchar(255)"`

	RefreshToken *string `gorm:"type:text"`

	EmailVerificationTokenHash *string `gorm:"type:varchar(64);index"`
	EmailVerificationExpiry    *time.Time

	PasswordResetTokenHash *string `gorm:"type:varchar(64);index"`
	PasswordResetExpiry    *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
