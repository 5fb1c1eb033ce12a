// Package token issues and verifies the gateway's stateless bearer tokens.
// Tokens are HS256-signed JWTs carrying the authenticated email; validity is
// fully determined by signature and expiry, nothing is stored server-side.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/secureweather/weather-gateway/internal/core/domain"
)

// TTL is the fixed token lifetime.
const TTL = time.Hour

// Claims is the signed claim set embedded in every token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a single process-wide secret.
type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), now: time.Now}
}

// Issue returns a signed token binding email, issued-at and a TTL expiry.
func (s *Service) Issue(email string) (string, error) {
	now := s.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and checks the token. Every failure mode — bad signature,
// malformed input, expired timestamp — collapses into domain.ErrInvalidToken
// so callers cannot distinguish a stale token from a forged one.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
