package ports

import (
	"context"
	"encoding/json"

	"github.com/secureweather/weather-gateway/internal/core/domain"
)

// WeatherProvider abstracts the external weather endpoint. Implementations
// must return domain.ErrWeatherUpstream on a non-success provider status and
// treat the payload as untrusted input.
type WeatherProvider interface {
	Fetch(ctx context.Context, city string) (json.RawMessage, error)
}

type WeatherService interface {
	Lookup(ctx context.Context, city string) (*domain.WeatherReport, error)
}
