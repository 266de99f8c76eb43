package config

import (
	"fmt"
	"strings"
	"time"

	"creature-reviews/internal/ports/cache"

	"github.com/caarlos0/env/v11"
)

// Config se arma solo desde variables de entorno.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// DB_DRIVER: sqlite (default, DB_DSN vacío = en memoria) o postgres.
	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBDSN    string `env:"DB_DSN"`

	// Sin REDIS_ADDR el cache de categories es en proceso.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	CategoryCacheAbsolute time.Duration `env:"CATEGORY_CACHE_ABSOLUTE" envDefault:"1m"`
	CategoryCacheSliding  time.Duration `env:"CATEGORY_CACHE_SLIDING" envDefault:"10s"`

	// Sin MONGO_URI el activity log usa el repo en memoria.
	MongoURI                  string `env:"MONGO_URI"`
	MongoDatabase             string `env:"MONGO_DATABASE" envDefault:"creature_reviews"`
	MongoActivitiesCollection string `env:"MONGO_ACTIVITIES_COLLECTION" envDefault:"activities"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"creature-reviews"`

	OTELEndpoint string `env:"OTEL_ENDPOINT"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Driver(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Driver normaliza DB_DRIVER al nombre de driver de database/sql.
func (c Config) Driver() (string, error) {
	switch strings.ToLower(strings.TrimSpace(c.DBDriver)) {
	case "", "sqlite", "sqlite3":
		return "sqlite", nil
	case "postgres", "postgresql", "pgx":
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}

func (c Config) CategoryCache() cache.EntryOptions {
	return cache.EntryOptions{
		Absolute: c.CategoryCacheAbsolute,
		Sliding:  c.CategoryCacheSliding,
	}
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}
