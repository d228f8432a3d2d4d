package persistence

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-gate/internal/config"
)

const redisStartupPingTimeout = 2 * time.Second

// Redis is the cache the downstream handlers share; health reporting only.
type Redis struct {
	Client *redis.Client
}

// NewRedis builds a client when REDIS_ADDR is set. An unreachable server is
// logged, not fatal: readiness reports it until it comes up.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if cfg.Addr == "" {
		logger.Warn("redis disabled", zap.String("reason", "REDIS_ADDR empty"))
		return &Redis{}
	}

	r := &Redis{Client: redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})}

	ctx, cancel := context.WithTimeout(context.Background(), redisStartupPingTimeout)
	defer cancel()
	if err := r.Ping(ctx); err != nil {
		logger.Warn("redis unreachable at startup", zap.String("addr", cfg.Addr), zap.Error(err))
	} else {
		logger.Info("redis ready", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	}
	return r
}

// Enabled reports whether a client was configured.
func (r *Redis) Enabled() bool {
	return r != nil && r.Client != nil
}

// Ping checks the server; ErrNotConfigured when disabled.
func (r *Redis) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return ErrNotConfigured
	}
	return r.Client.Ping(ctx).Err()
}

// Close releases the client, if any.
func (r *Redis) Close() {
	if r.Enabled() {
		_ = r.Client.Close()
	}
}
