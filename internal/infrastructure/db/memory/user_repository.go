// Package memory provides the default in-memory user repository. State is
// process-lifetime only and lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/secureweather/weather-gateway/internal/core/domain"
)

// UserRepository keeps users in an append-only slice guarded by a mutex.
// The mutex protects the slice itself; it does not make check-then-insert
// across FindByEmail and Create atomic, which is the accepted behaviour.
type UserRepository struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			clone := r.users[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, *user)
	return nil
}
