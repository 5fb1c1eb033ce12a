package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=3000"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs bearer tokens; it is fixed for the process lifetime.
	// The default matches the historical lab value so local runs and tests
	// stay reproducible — override it in any real deployment.
	JWTSecret string `env:"JWT_SECRET, default=abc123"`

	Weather WeatherConfig
	Store   StoreConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type WeatherConfig struct {
	BaseURL  string        `env:"WEATHER_BASE_URL,  default=https://goweather.herokuapp.com"`
	Timeout  time.Duration `env:"WEATHER_TIMEOUT,   default=10s"`
	CacheTTL time.Duration `env:"WEATHER_CACHE_TTL, default=5m"`
}

type StoreConfig struct {
	// Driver selects the user store: "memory" (default, process-lifetime)
	// or "mongo" (persistent).
	Driver string `env:"STORE_DRIVER, default=memory"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=weather_gateway"`
}

type RedisConfig struct {
	// Addr enables the Redis weather cache when set; empty disables it.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
