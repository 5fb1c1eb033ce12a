package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/secureweather/weather-gateway/internal/core/domain"
)

func TestUserRepository_FindByEmail_Absent(t *testing.T) {
	repo := NewUserRepository()

	if _, err := repo.FindByEmail(context.Background(), "ghost@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_CreateThenFind(t *testing.T) {
	repo := NewUserRepository()

	if err := repo.Create(context.Background(), &domain.User{Email: "a@x.com", PasswordHash: "hash1"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	user, err := repo.FindByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if user.Email != "a@x.com" || user.PasswordHash != "hash1" {
		t.Fatalf("unexpected record: %+v", user)
	}
}

func TestUserRepository_EmailMatchIsExact(t *testing.T) {
	repo := NewUserRepository()

	_ = repo.Create(context.Background(), &domain.User{Email: "A@x.com", PasswordHash: "hash1"})

	if _, err := repo.FindByEmail(context.Background(), "a@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("lookup must be case-sensitive, got %v", err)
	}
}

func TestUserRepository_ReturnsCopy(t *testing.T) {
	repo := NewUserRepository()

	_ = repo.Create(context.Background(), &domain.User{Email: "a@x.com", PasswordHash: "hash1"})

	first, _ := repo.FindByEmail(context.Background(), "a@x.com")
	first.PasswordHash = "tampered"

	second, _ := repo.FindByEmail(context.Background(), "a@x.com")
	if second.PasswordHash != "hash1" {
		t.Fatalf("stored record was mutated through a returned pointer")
	}
}
