package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/secureweather/weather-gateway/internal/core/ports"
)

// WeatherHandler handles the token-protected weather lookup.
type WeatherHandler struct {
	service ports.WeatherService
}

func NewWeatherHandler(service ports.WeatherService) *WeatherHandler {
	return &WeatherHandler{service: service}
}

type weatherResponse struct {
	City        string          `json:"city"`
	Temp        string          `json:"temp"`
	Description string          `json:"description"`
	Wind        string          `json:"wind"`
	Raw         json.RawMessage `json:"raw"`
}

// Get handles GET /weather?city=<name>.
//
// @Summary      Look up current weather for a city
// @Tags         weather
// @Produce      json
// @Security     BearerAuth
// @Param        city  query     string  true  "City name (e.g. Riyadh)"
// @Success      200   {object}  weatherResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /weather [get]
func (h *WeatherHandler) Get(c echo.Context) error {
	report, err := h.service.Lookup(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, weatherResponse{
		City:        report.City,
		Temp:        report.Temperature,
		Description: report.Description,
		Wind:        report.Wind,
		Raw:         report.Raw,
	})
}
