// Package cache contains the Redis implementation of the analytics result cache.
package cache

import (
	"context"
	"log/slog"
	"time"

	"reviewpulse/config"
	"reviewpulse/internal/domain/lifecycle"
	"reviewpulse/internal/domain/repository"
	"reviewpulse/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const scanBatchSize = 100

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client and binds it to the application lifecycle.
// Redis is optional; without it every analytics request recomputes from
// the database.
func New(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// redisCacheRepository implements the repository.CacheRepository interface.
type redisCacheRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCacheRepository is the constructor for the cache repository. Without a
// Redis client it degrades to a pass-through that always misses.
func NewCacheRepository(client *redis.Client, cfg *config.Config) repository.CacheRepository {
	if client == nil || cfg.Redis == nil {
		return &noopCacheRepository{}
	}

	return &redisCacheRepository{
		client: client,
		prefix: cfg.Redis.KeyPrefix,
		ttl:    cfg.Redis.TTL,
	}
}

// noopCacheRepository disables caching when no Redis is configured.
type noopCacheRepository struct{}

func (*noopCacheRepository) Get(_ context.Context, _ string) ([]byte, error) {
	return nil, repository.ErrCacheMiss
}

func (*noopCacheRepository) Set(_ context.Context, _ string, _ []byte) error {
	return nil
}

func (*noopCacheRepository) DeletePattern(_ context.Context, _ string) error {
	return nil
}

// Get retrieves a cached value, mapping redis.Nil to ErrCacheMiss.
func (repo *redisCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := repo.client.Get(ctx, repo.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrCacheMiss
		}

		return nil, errors.Wrap(err, "failed to get cached value")
	}

	return data, nil
}

// Set stores a value under the configured TTL.
func (repo *redisCacheRepository) Set(ctx context.Context, key string, value []byte) error {
	if err := repo.client.Set(ctx, repo.prefix+key, value, repo.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set cached value")
	}

	return nil
}

// DeletePattern removes every key matching the pattern, scanning in batches
// to avoid blocking Redis on large keyspaces.
func (repo *redisCacheRepository) DeletePattern(ctx context.Context, pattern string) error {
	var cursor uint64

	for {
		keys, nextCursor, err := repo.client.Scan(ctx, cursor, repo.prefix+pattern, scanBatchSize).Result()
		if err != nil {
			return errors.Wrap(err, "failed to scan cached keys")
		}

		if len(keys) > 0 {
			if err := repo.client.Del(ctx, keys...).Err(); err != nil {
				return errors.Wrap(err, "failed to delete cached keys")
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			return nil
		}
	}
}
