package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/secureweather/weather-gateway/internal/core/domain"
)

func TestService_IssueAndVerify(t *testing.T) {
	svc := NewService("abc123")

	signed, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected a token string")
	}

	claims, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("unexpected email claim: %q", claims.Email)
	}
	if claims.ExpiresAt.Sub(claims.IssuedAt.Time) != TTL {
		t.Fatalf("expected %v lifetime, got %v", TTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	}
}

func TestService_VerifyRejectsTamperedSignature(t *testing.T) {
	svc := NewService("abc123")

	signed, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Flip the last character of the signature segment.
	last := signed[len(signed)-1]
	flipped := "A"
	if last == 'A' {
		flipped = "B"
	}
	tampered := signed[:len(signed)-1] + flipped

	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestService_VerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewService("abc123").Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewService("other-secret").Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestService_VerifyRejectsExpiredLikeForged(t *testing.T) {
	svc := NewService("abc123")

	issuedAt := time.Now().Add(-2 * TTL)
	svc.now = func() time.Time { return issuedAt }
	signed, err := svc.Issue("a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	svc.now = time.Now
	_, expiredErr := svc.Verify(signed)
	if !errors.Is(expiredErr, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", expiredErr)
	}

	_, forgedErr := svc.Verify("not.a.token")
	if expiredErr.Error() != forgedErr.Error() {
		t.Fatalf("expired and forged outcomes differ: %v vs %v", expiredErr, forgedErr)
	}
}

func TestService_VerifyRejectsMalformed(t *testing.T) {
	svc := NewService("abc123")

	for _, bad := range []string{"", "garbage", strings.Repeat(".", 2)} {
		if _, err := svc.Verify(bad); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", bad, err)
		}
	}
}
