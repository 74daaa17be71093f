package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Driver        string // memory | redis
	RedisAddr     string
	RedisPassword string
	TTL           time.Duration
}

type FactoryResult struct {
	Driver string
	Store  StateStore
	// Close releases the driver's connections.
	Close func() error
}

func New(ctx context.Context, cfg Config) (FactoryResult, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = "memory"
	}

	switch driver {
	case "memory":
		return FactoryResult{Driver: "memory", Store: NewMemory(cfg.TTL), Close: func() error { return nil }}, nil

	case "redis":
		if cfg.RedisAddr == "" {
			return FactoryResult{}, fmt.Errorf("redis config missing: REDIS_ADDR required")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return FactoryResult{}, fmt.Errorf("redis ping: %w", err)
		}
		return FactoryResult{Driver: "redis", Store: NewRedis(client, cfg.TTL), Close: client.Close}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown STATE_DRIVER: %s", driver)
	}
}
