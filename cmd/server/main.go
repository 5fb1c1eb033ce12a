package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/secureweather/weather-gateway/internal/api"
	"github.com/secureweather/weather-gateway/internal/core/ports"
	"github.com/secureweather/weather-gateway/internal/core/service"
	"github.com/secureweather/weather-gateway/internal/infrastructure/config"
	"github.com/secureweather/weather-gateway/internal/infrastructure/db/memory"
	mongostore "github.com/secureweather/weather-gateway/internal/infrastructure/db/mongo"
	redisstore "github.com/secureweather/weather-gateway/internal/infrastructure/db/redis"
	"github.com/secureweather/weather-gateway/internal/infrastructure/weather"
	"github.com/secureweather/weather-gateway/internal/pkg/password"
	"github.com/secureweather/weather-gateway/internal/pkg/token"
	"github.com/secureweather/weather-gateway/pkg/logger"
)

// @title        Secure Weather Gateway API
// @version      1.0
// @description  Minimal authenticated gateway proxying city weather lookups behind bearer tokens.
// @host         localhost:3000
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- User store ---
	var userRepo ports.UserRepository
	var mongoDB *mongodriver.Database
	switch cfg.Store.Driver {
	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()
		mongoDB = db
		userRepo = mongostore.NewUserRepository(db)
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo user store")
	default:
		userRepo = memory.NewUserRepository()
		log.Info().Msg("using in-memory user store")
	}

	// --- Optional weather cache ---
	var rdb *goredis.Client
	var cache service.WeatherCache
	if cfg.Redis.Addr != "" {
		var err error
		rdb, err = redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		cache = redisstore.NewWeatherCache(rdb, cfg.Weather.CacheTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("weather cache enabled")
	}

	// --- Services ---
	tokens := token.NewService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, password.NewHasher(), tokens)
	provider := weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.Timeout)
	weatherService := service.NewWeatherService(provider, cache, log)

	e := api.NewRouter(api.Dependencies{
		Log:            log,
		AuthService:    authService,
		WeatherService: weatherService,
		Tokens:         tokens,
		Mongo:          mongoDB,
		Redis:          rdb,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
