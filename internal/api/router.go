package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/secureweather/weather-gateway/docs"
	"github.com/secureweather/weather-gateway/internal/api/handler"
	"github.com/secureweather/weather-gateway/internal/api/middleware"
	"github.com/secureweather/weather-gateway/internal/core/ports"
	"github.com/secureweather/weather-gateway/internal/pkg/token"
)

// Dependencies carries the wired services and optional backing stores the
// router needs. Mongo and Redis are nil unless the deployment enables them;
// they feed the readiness probe only.
type Dependencies struct {
	Log            zerolog.Logger
	AuthService    ports.AuthService
	WeatherService ports.WeatherService
	Tokens         *token.Service
	Mongo          *mongo.Database
	Redis          *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// Request metrics live in a per-router registry so the router can be
	// rebuilt (tests); /metrics also gathers the default registry, which
	// holds the custom gateway metrics.
	promReg := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "weathergate",
		Registerer: promReg,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	weatherHandler := handler.NewWeatherHandler(deps.WeatherService)
	authMiddleware := middleware.Auth(deps.Tokens)

	// --- Public routes ---
	rootHandler := handler.NewRootHandler()
	e.GET("/", rootHandler.Root)
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	e.GET("/weather", weatherHandler.Get, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{promReg, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
