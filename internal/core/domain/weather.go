package domain

import (
	"encoding/json"
	"errors"
)

var ErrMissingToken = errors.New("missing token")
var ErrInvalidToken = errors.New("invalid token")
var ErrCityRequired = errors.New("city required")
var ErrWeatherUpstream = errors.New("weather upstream error")

// WeatherReport is the projection of an upstream weather lookup. Raw keeps
// the provider's full payload untouched; the provider schema is outside our
// control, so only the three projected fields are interpreted.
type WeatherReport struct {
	City        string          `json:"city"`
	Temperature string          `json:"temperature"`
	Description string          `json:"description"`
	Wind        string          `json:"wind"`
	Raw         json.RawMessage `json:"raw"`
}
