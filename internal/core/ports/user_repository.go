package ports

import (
	"context"

	"github.com/secureweather/weather-gateway/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
// Create assumes the caller has already checked for absence via FindByEmail;
// the check-then-insert race between concurrent registrations is accepted.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
