package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/secureweather/weather-gateway/internal/api/metrics"
	"github.com/secureweather/weather-gateway/internal/core/domain"
	"github.com/secureweather/weather-gateway/internal/core/ports"
)

// WeatherCache abstracts the optional response cache (Redis).
type WeatherCache interface {
	Get(ctx context.Context, city string) (json.RawMessage, bool, error)
	Set(ctx context.Context, city string, payload json.RawMessage) error
}

// WeatherService performs the downstream weather lookup for authenticated
// callers. The cache is optional; pass nil to always hit the provider.
type WeatherService struct {
	provider ports.WeatherProvider
	cache    WeatherCache
	log      zerolog.Logger
}

func NewWeatherService(provider ports.WeatherProvider, cache WeatherCache, log zerolog.Logger) *WeatherService {
	return &WeatherService{provider: provider, cache: cache, log: log}
}

func (s *WeatherService) Lookup(ctx context.Context, city string) (*domain.WeatherReport, error) {
	if city == "" {
		metrics.WeatherLookupsTotal.WithLabelValues("missing_city").Inc()
		return nil, domain.ErrCityRequired
	}

	if payload, ok := s.cacheGet(ctx, city); ok {
		metrics.WeatherCacheTotal.WithLabelValues("hit").Inc()
		report, err := project(city, payload)
		if err == nil {
			metrics.WeatherLookupsTotal.WithLabelValues("ok").Inc()
			return report, nil
		}
		// A corrupt cache entry falls through to the provider.
		s.log.Warn().Err(err).Str("city", city).Msg("discarding corrupt cache entry")
	}
	metrics.WeatherCacheTotal.WithLabelValues("miss").Inc()

	payload, err := s.provider.Fetch(ctx, city)
	if err != nil {
		if errors.Is(err, domain.ErrWeatherUpstream) {
			metrics.WeatherLookupsTotal.WithLabelValues("upstream_error").Inc()
		} else {
			metrics.WeatherLookupsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	report, err := project(city, payload)
	if err != nil {
		metrics.WeatherLookupsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	s.cacheSet(ctx, city, payload)
	metrics.WeatherLookupsTotal.WithLabelValues("ok").Inc()
	return report, nil
}

func (s *WeatherService) cacheGet(ctx context.Context, city string) (json.RawMessage, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, ok, err := s.cache.Get(ctx, city)
	if err != nil {
		// Cache trouble must never fail a lookup.
		s.log.Warn().Err(err).Str("city", city).Msg("weather cache read failed")
		return nil, false
	}
	return payload, ok
}

func (s *WeatherService) cacheSet(ctx context.Context, city string, payload json.RawMessage) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, city, payload); err != nil {
		s.log.Warn().Err(err).Str("city", city).Msg("weather cache write failed")
	}
}

// providerPayload is the subset of the provider response we interpret.
type providerPayload struct {
	Temperature string `json:"temperature"`
	Description string `json:"description"`
	Wind        string `json:"wind"`
}

func project(city string, payload json.RawMessage) (*domain.WeatherReport, error) {
	var p providerPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}
	return &domain.WeatherReport{
		City:        city,
		Temperature: p.Temperature,
		Description: p.Description,
		Wind:        p.Wind,
		Raw:         payload,
	}, nil
}
