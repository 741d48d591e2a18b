package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/mystery-engine/pkg/storage"
)

// DefaultTTL is how long a generated game is kept in Redis
const DefaultTTL = 24 * time.Hour

// RedisStorage implements the Storage interface with one Redis string per file.
// Keys are namespaced by game so several games can share a server.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
	gameID uuid.UUID
	ttl    time.Duration
}

// Ensure RedisStorage implements Storage interface
var _ storage.Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a Redis storage for one game. redisURL is a redis:// URL.
func NewRedisStorage(redisURL string, gameID uuid.UUID, ttl time.Duration, logger *slog.Logger) (*RedisStorage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &RedisStorage{
		client: redis.NewClient(opt),
		logger: logger.With("game_id", gameID.String()),
		gameID: gameID,
		ttl:    ttl,
	}, nil
}

// Health and lifecycle methods

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Debug("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context, maxRetries int, retryDelay time.Duration) error {
	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStorage) key(path string) string {
	return "mystery:" + r.gameID.String() + ":" + path
}

func (r *RedisStorage) indexKey() string {
	return "mystery:" + r.gameID.String() + ":paths"
}

// File operations

func (r *RedisStorage) WriteText(ctx context.Context, path string, content string) error {
	if path == "" {
		return fmt.Errorf("invalid artifact path %q", path)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(path), content, r.ttl)
	pipe.SAdd(ctx, r.indexKey(), path)
	pipe.Expire(ctx, r.indexKey(), r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to write artifact", "path", path, "error", err)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (r *RedisStorage) ReadText(ctx context.Context, path string) (string, error) {
	content, err := r.client.Get(ctx, r.key(path)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("%w: %s", storage.ErrNotFound, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, nil
}

func (r *RedisStorage) List(ctx context.Context) ([]string, error) {
	paths, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	slices.Sort(paths)
	return paths, nil
}
