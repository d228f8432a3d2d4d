package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-gate/internal/config"
)

// ErrNotConfigured is returned by Ping on a dependency that was never set up.
var ErrNotConfigured = errors.New("dependency not configured")

// Postgres is the database the downstream handlers share. The auth gate
// never reads from it; this process only reports its health.
type Postgres struct {
	Pool *pgxpool.Pool
}

// NewPostgres opens a pool when a DSN is set and returns a disabled
// Postgres otherwise.
func NewPostgres(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) (*Postgres, error) {
	if cfg.DSN == "" {
		logger.Warn("postgres disabled", zap.String("reason", "POSTGRES_DSN empty"))
		return &Postgres{}, nil
	}

	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	logger.Info("postgres ready", zap.Int32("max_conns", poolCfg.MaxConns))
	return &Postgres{Pool: pool}, nil
}

// poolConfig applies the non-zero tuning knobs on top of the DSN.
func poolConfig(cfg config.PostgresConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse POSTGRES_DSN: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxIdleSec > 0 {
		poolCfg.MaxConnIdleTime = time.Duration(cfg.ConnMaxIdleSec) * time.Second
	}
	if cfg.ConnMaxLifeSec > 0 {
		poolCfg.MaxConnLifetime = time.Duration(cfg.ConnMaxLifeSec) * time.Second
	}
	return poolCfg, nil
}

// Enabled reports whether a pool was configured.
func (p *Postgres) Enabled() bool {
	return p != nil && p.Pool != nil
}

// Ping checks the pool; ErrNotConfigured when disabled.
func (p *Postgres) Ping(ctx context.Context) error {
	if !p.Enabled() {
		return ErrNotConfigured
	}
	return p.Pool.Ping(ctx)
}

// Close releases the pool, if any.
func (p *Postgres) Close() {
	if p.Enabled() {
		p.Pool.Close()
	}
}
