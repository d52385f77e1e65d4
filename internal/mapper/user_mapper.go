package mapper

import (
	"notehive-be/internal/entity"
	"notehive-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	return &entity.User{
		Id:                         u.Id,
		Email:                      u.Email,
		PasswordHash:               u.PasswordHash,
		FullName:                   u.FullName,
		EmailVerified:              u.EmailVerified,
		AvatarURL:                  u.AvatarURL,
		AvatarBlobId:               u.AvatarBlobId,
		RefreshToken:               u.RefreshToken,
		EmailVerificationTokenHash: u.EmailVerificationTokenHash,
		EmailVerificationExpiry:    u.EmailVerificationExpiry,
		PasswordResetTokenHash:     u.PasswordResetTokenHash,
		PasswordResetExpiry:        u.PasswordResetExpiry,
		CreatedAt:                  u.CreatedAt,
		UpdatedAt:                  u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	return &model.User{
		Id:                         u.Id,
		Email:                      u.Email,
		PasswordHash:               u.PasswordHash,
		FullName:                   u.FullName,
		EmailVerified:              u.EmailVerified,
		AvatarURL:                  u.AvatarURL,
		AvatarBlobId:               u.AvatarBlobId,
		RefreshToken:               u.RefreshToken,
		EmailVerificationTokenHash: u.EmailVerificationTokenHash,
		EmailVerificationExpiry:    u.EmailVerificationExpiry,
		PasswordResetTokenHash:     u.PasswordResetTokenHash,
		PasswordResetExpiry:        u.PasswordResetExpiry,
		CreatedAt:                  u.CreatedAt,
		UpdatedAt:                  u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
