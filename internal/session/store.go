package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"oncolearn/internal/config"
	"oncolearn/internal/errs"
)

// Store persists refresh tokens server-side. The token itself is an opaque
// value handed to the client; everything else about the session lives here
// and dies with the TTL or an explicit logout.
type Store interface {
	Save(ctx context.Context, token string, userID int64, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// NewRedisStoreWithClient wraps an existing client. Used by tests.
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func refreshKey(token string) string {
	return "session:refresh:" + token
}

func (s *RedisStore) Save(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	err := s.client.Set(ctx, refreshKey(token), strconv.FormatInt(userID, 10), ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to save refresh token: %w", errs.ErrUpstream)
	}
	return nil
}

// Lookup resolves a refresh token to its user id. Unknown or expired tokens
// report ErrNotFound; the auth service turns that into a credential error.
func (s *RedisStore) Lookup(ctx context.Context, token string) (int64, error) {
	val, err := s.client.Get(ctx, refreshKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, errs.ErrNotFound
		}
		return 0, fmt.Errorf("failed to look up refresh token: %w", errs.ErrUpstream)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt refresh token value: %w", err)
	}

	return userID, nil
}

// Delete is idempotent: removing a token that is already gone is not an error.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	err := s.client.Del(ctx, refreshKey(token)).Err()
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", errs.ErrUpstream)
	}
	return nil
}
