package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/secureweather/weather-gateway/internal/api/metrics"
	"github.com/secureweather/weather-gateway/internal/core/domain"
	"github.com/secureweather/weather-gateway/internal/core/ports"
	"github.com/secureweather/weather-gateway/internal/pkg/password"
	"github.com/secureweather/weather-gateway/internal/pkg/token"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher *password.Hasher
	tokens *token.Service
}

func NewAuthService(repo ports.UserRepository, hasher *password.Hasher, tokens *token.Service) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, email, plaintext string) error {
	if email == "" || plaintext == "" {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return domain.ErrMissingCredentials
	}

	// Check-then-insert; the race between concurrent registrations for the
	// same email is accepted.
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		return domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.Create(ctx, &domain.User{Email: email, PasswordHash: hash}); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("create user: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, plaintext string) (string, error) {
	if email == "" || plaintext == "" {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return "", domain.ErrMissingCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
			return "", domain.ErrUserNotFound
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("wrong_password").Inc()
		return "", domain.ErrWrongPassword
	}

	signed, err := s.tokens.Issue(user.Email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("issue token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return signed, nil
}
