package service

import (
	"context"
	"errors"

	"notehive-be/internal/apperror"
	"notehive-be/internal/dto"
	"notehive-be/internal/pkg/blob"
	"notehive-be/internal/pkg/logger"
	"notehive-be/internal/repository/specification"
	"notehive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	UpdateAvatar(ctx context.Context, userId uuid.UUID, filename string, data []byte) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	blobStore  blob.Store
	log        logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, blobStore blob.Store, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		blobStore:  blobStore,
		log:        log,
	}
}

// UpdateAvatar uploads the new blob first and only then repoints the user,
// so a failed upload leaves the previous avatar untouched. The old blob is
// removed best-effort after the switch.
func (s *userService) UpdateAvatar(ctx context.Context, userId uuid.UUID, filename string, data []byte) (*dto.UserResponse, error) {
	if len(data) == 0 {
		return nil, apperror.NewValidation("avatar file is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.NewInternal("failed to load profile", err)
	}
	if user == nil {
		return nil, apperror.NewNotFound("account not found")
	}

	url, blobId, err := s.blobStore.Upload(ctx, filename, data)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload avatar", err)
	}
	if url == "" || blobId == "" {
		return nil, apperror.NewInternal("avatar upload returned no location", errors.New("empty url or blob id"))
	}

	oldBlobId := user.AvatarBlobId

	if err := uow.UserRepository().UpdateAvatar(ctx, userId, url, blobId); err != nil {
		return nil, apperror.NewInternal("failed to update avatar", err)
	}

	if oldBlobId != nil && *oldBlobId != blobId {
		if err := s.blobStore.Destroy(ctx, *oldBlobId); err != nil {
			s.log.Warn("user", "failed to remove previous avatar blob", map[string]interface{}{
				"user_id": userId.String(),
				"blob_id": *oldBlobId,
				"error":   err.Error(),
			})
		}
	}

	user.AvatarURL = &url
	user.AvatarBlobId = &blobId
	res := dto.NewUserResponse(user)
	return &res, nil
}
