package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// RotationLockRegistry hands out one mutex per user id so the refresh-token
// compare-and-rotate step is sequenced per user. A rotation holds its lock
// for a few store round trips only; the TTL just bounds registry growth for
// users that stop refreshing.
type RotationLockRegistry struct {
	locks *cache.Cache
}

func NewRotationLockRegistry() *RotationLockRegistry {
	return &RotationLockRegistry{
		locks: cache.New(1*time.Hour, 10*time.Minute),
	}
}

// Acquire locks the user's mutex and returns it; the caller must Unlock.
func (r *RotationLockRegistry) Acquire(userId uuid.UUID) *sync.Mutex {
	key := userId.String()

	mu := &sync.Mutex{}
	if err := r.locks.Add(key, mu, cache.DefaultExpiration); err != nil {
		if existing, found := r.locks.Get(key); found {
			mu = existing.(*sync.Mutex)
		} else {
			// Entry expired between Add and Get; keep ours.
			r.locks.Set(key, mu, cache.DefaultExpiration)
		}
	}

	mu.Lock()
	return mu
}
