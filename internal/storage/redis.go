package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tarimvitrin.com/app/internal/modules/storefront"
)

// Redis keeps view states in redis so several web processes can share them.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, sessionID string) (storefront.State, error) {
	data, err := r.client.Get(ctx, stateKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return storefront.State{}, ErrNotFound
	}
	if err != nil {
		return storefront.State{}, fmt.Errorf("redis get failed: %w", err)
	}

	var st storefront.State
	if err := json.Unmarshal(data, &st); err != nil {
		return storefront.State{}, fmt.Errorf("unmarshal view state failed: %w", err)
	}
	return st, nil
}

func (r *Redis) Save(ctx context.Context, sessionID string, st storefront.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal view state failed: %w", err)
	}
	if err := r.client.Set(ctx, stateKey(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, stateKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func stateKey(sessionID string) string {
	return fmt.Sprintf("viewstate:%s", sessionID)
}
