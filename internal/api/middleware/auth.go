package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/secureweather/weather-gateway/internal/api/metrics"
	"github.com/secureweather/weather-gateway/internal/core/domain"
	"github.com/secureweather/weather-gateway/internal/pkg/token"
)

// Auth validates the bearer token and injects the authenticated email into
// the request context. A missing header and a bad token are distinct
// outcomes; every verification failure collapses into domain.ErrInvalidToken.
func Auth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrMissingToken
			}

			// The token is the second whitespace-separated segment,
			// following the scheme word.
			parts := strings.Fields(header)
			if len(parts) < 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return domain.ErrInvalidToken
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return domain.ErrInvalidToken
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set("email", claims.Email)

			return next(c)
		}
	}
}
