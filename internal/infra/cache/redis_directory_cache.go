// Package cache keeps the public directory snapshot in Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"pymerp/config"
	"pymerp/internal/domain/entity"
	"pymerp/internal/domain/lifecycle"
	"pymerp/internal/domain/service"
)

const (
	publicCompaniesKey  = "pymerp:directory:public_companies"
	defaultDirectoryTTL = 5 * time.Minute
)

type redisDirectoryCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisDirectoryCache wraps an existing client.
func NewRedisDirectoryCache(client redis.UniversalClient, ttl time.Duration) service.DirectoryCache {
	if ttl <= 0 {
		ttl = defaultDirectoryTTL
	}

	return &redisDirectoryCache{client: client, ttl: ttl}
}

func (c *redisDirectoryCache) GetPublicCompanies(ctx context.Context) ([]*entity.Company, bool, error) {
	data, err := c.client.Get(ctx, publicCompaniesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to read directory cache")
	}

	var companies []*entity.Company
	if err := json.Unmarshal(data, &companies); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode directory cache")
	}

	return companies, true, nil
}

func (c *redisDirectoryCache) SetPublicCompanies(ctx context.Context, companies []*entity.Company) error {
	data, err := json.Marshal(companies)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrap(c.client.Set(ctx, publicCompaniesKey, data, c.ttl).Err(), "failed to write directory cache")
}

func (c *redisDirectoryCache) Invalidate(ctx context.Context) error {
	return errors.Wrap(c.client.Del(ctx, publicCompaniesKey).Err(), "failed to invalidate directory cache")
}

// CacheParams holds dependencies for the directory cache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// CacheResult leaves DirectoryCache nil when Redis is not configured.
type CacheResult struct {
	fx.Out

	Cache service.DirectoryCache
}

// NewFromConfig connects to Redis when configured. Without an address the directory
// reads the store on every request.
func NewFromConfig(params CacheParams) CacheResult {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, directory cache disabled")

		return CacheResult{}
	}

	addr := strings.TrimPrefix(strings.TrimPrefix(cfg.Addr, "redis://"), "rediss://")
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The directory works without the cache, so a failed ping only warns.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.String("addr", addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return CacheResult{Cache: NewRedisDirectoryCache(client, cfg.DirectoryTTL)}
}

// Module provides the directory cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFromConfig),
)
