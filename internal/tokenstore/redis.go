package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/erp-admin-client/internal/config"
	"github.com/spec-kit/erp-admin-client/internal/domain"
)

// Redis persists the token pair in a Redis instance. Used when the
// client runs embedded in a backend service where several replicas
// share one session.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("addr", cfg.Addr))
	}

	return &Redis{client: client, prefix: "erp-admin:"}
}

// Close closes the underlying client.
func (r *Redis) Close() {
	if r != nil && r.client != nil {
		_ = r.client.Close()
	}
}

func (r *Redis) Save(ctx context.Context, pair domain.TokenPair) error {
	if err := r.client.Set(ctx, r.prefix+AccessTokenKey, pair.Access, 0).Err(); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}
	if err := r.client.Set(ctx, r.prefix+RefreshTokenKey, pair.Refresh, 0).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

func (r *Redis) Read(ctx context.Context) (domain.TokenPair, bool, error) {
	access, err := r.client.Get(ctx, r.prefix+AccessTokenKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.TokenPair{}, false, nil
		}
		return domain.TokenPair{}, false, fmt.Errorf("read access token: %w", err)
	}

	refresh, err := r.client.Get(ctx, r.prefix+RefreshTokenKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return domain.TokenPair{}, false, fmt.Errorf("read refresh token: %w", err)
	}

	pair := domain.TokenPair{Access: access, Refresh: refresh}
	return pair, pair.Access != "", nil
}

func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.prefix+AccessTokenKey, r.prefix+RefreshTokenKey).Err(); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}
