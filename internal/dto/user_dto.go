package dto

import (
	"time"

	"notehive-be/internal/entity"

	"github.com/google/uuid"
)

type UserResponse struct {
	Id            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	EmailVerified bool      `json:"email_verified"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewUserResponse maps an account entity onto its public shape. Secret
// material never appears here regardless of what the caller passes in.
func NewUserResponse(user *entity.User) UserResponse {
	res := UserResponse{
		Id:            user.Id,
		Email:         user.Email,
		FullName:      user.FullName,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
	if user.AvatarURL != nil {
		res.AvatarURL = *user.AvatarURL
	}
	return res
}
