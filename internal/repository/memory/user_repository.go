package memory

import (
	"context"
	"strings"
	"time"

	"notehive-be/internal/entity"
	"notehive-be/internal/repository/contract"
	"notehive-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) contract.UserRepository {
	return &UserRepository{store: store}
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		case specification.ByVerificationTokenHash:
			if u.EmailVerificationTokenHash == nil || *u.EmailVerificationTokenHash != s.Hash {
				return false
			}
		case specification.VerificationNotExpired:
			if u.EmailVerificationExpiry == nil || !u.EmailVerificationExpiry.After(s.Now) {
				return false
			}
		case specification.ByResetTokenHash:
			if u.PasswordResetTokenHash == nil || *u.PasswordResetTokenHash != s.Hash {
				return false
			}
		case specification.ResetNotExpired:
			if u.PasswordResetExpiry == nil || !u.PasswordResetExpiry.After(s.Now) {
				return false
			}
		}
	}
	return true
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	r.store.users[user.Id] = cloneUser(user)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[user.Id] = cloneUser(user)
	return nil
}

func (r *UserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if matchUser(u, specs) {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.users[id]; ok {
		t := token
		u.RefreshToken = &t
	}
	return nil
}

func (r *UserRepository) RotateRefreshToken(ctx context.Context, id uuid.UUID, previous, next string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok || u.RefreshToken == nil || *u.RefreshToken != previous {
		return false, nil
	}
	n := next
	u.RefreshToken = &n
	return true, nil
}

func (r *UserRepository) ClearRefreshToken(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.users[id]; ok {
		u.RefreshToken = nil
	}
	return nil
}

func (r *UserRepository) MarkEmailVerified(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.users[id]; ok {
		u.EmailVerified = true
		u.EmailVerificationTokenHash = nil
		u.EmailVerificationExpiry = nil
	}
	return nil
}

func (r *UserRepository) SetPasswordResetToken(ctx context.Context, id uuid.UUID, hash string, expiry time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.users[id]; ok {
		h := hash
		e := expiry
		u.PasswordResetTokenHash = &h
		u.PasswordResetExpiry = &e
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.users[id]; ok {
		u.PasswordHash = passwordHash
		u.PasswordResetTokenHash = nil
		u.PasswordResetExpiry = nil
	}
	return nil
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, url, blobId string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.users[id]; ok {
		uCopy := url
		bCopy := blobId
		u.AvatarURL = &uCopy
		u.AvatarBlobId = &bCopy
	}
	return nil
}
