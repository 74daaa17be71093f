package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string
	GinMode  string
	LogLevel slog.Level

	// Record store
	StoreDriver  string // memory | sql | rest
	DBDSN        string
	StoreURL     string
	StoreKey     string
	StoreTable   string
	StoreTimeout time.Duration

	// View state
	StateDriver   string // memory | redis
	RedisAddr     string
	RedisPassword string
	StateTTL      time.Duration

	CookieSecret []byte
	CookieSecure bool
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	// .env yoksa sorun değil: prod gerçek env değişkenlerini kullanır
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		HTTPAddr:      get("HTTP_ADDR", ":8080"),
		GinMode:       get("GIN_MODE", "release"),
		StoreDriver:   get("STORE_DRIVER", "memory"),
		DBDSN:         get("DB_DSN", ""),
		StoreURL:      get("STORE_URL", ""),
		StoreKey:      get("STORE_KEY", ""),
		StoreTable:    get("STORE_TABLE", "products"),
		StateDriver:   get("STATE_DRIVER", "memory"),
		RedisAddr:     get("REDIS_ADDR", ""),
		RedisPassword: get("REDIS_PASSWORD", ""),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	var err error
	if cfg.StoreTimeout, err = time.ParseDuration(get("STORE_TIMEOUT", "0s")); err != nil {
		return Config{}, fmt.Errorf("STORE_TIMEOUT: %w", err)
	}
	if cfg.StateTTL, err = time.ParseDuration(get("STATE_TTL", "720h")); err != nil {
		return Config{}, fmt.Errorf("STATE_TTL: %w", err)
	}
	if cfg.CookieSecure, err = strconv.ParseBool(get("COOKIE_SECURE", "false")); err != nil {
		return Config{}, fmt.Errorf("COOKIE_SECURE: %w", err)
	}

	secret := get("COOKIE_SECRET", "")
	if secret == "" {
		return Config{}, fmt.Errorf("COOKIE_SECRET environment variable is required")
	}
	cfg.CookieSecret = []byte(secret)

	switch cfg.StoreDriver {
	case "memory":
	case "sql":
		if cfg.DBDSN == "" {
			return Config{}, fmt.Errorf("DB_DSN environment variable is required for STORE_DRIVER=sql")
		}
	case "rest":
		if cfg.StoreURL == "" {
			return Config{}, fmt.Errorf("STORE_URL environment variable is required for STORE_DRIVER=rest")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER: %s", cfg.StoreDriver)
	}

	return cfg, nil
}
