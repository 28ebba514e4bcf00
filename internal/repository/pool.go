package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/mindwell/pkg/cleanup"
)

// NewPool opens and pings a pool shared by every repository. Closing is registered as a cleanup job.
func NewPool(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, errors.New("parsing pool config error: " + err.Error())
	}
	if pgCfg, ok := cfg.(*PGCfg); ok {
		if pgCfg.MaxConns > 0 {
			poolCfg.MaxConns = pgCfg.MaxConns
		}
		if pgCfg.MinConns > 0 {
			poolCfg.MinConns = pgCfg.MinConns
		}
		if pgCfg.MaxConnLifetime > 0 {
			poolCfg.MaxConnLifetime = pgCfg.MaxConnLifetime
		}
		if pgCfg.MaxConnIdleTime > 0 {
			poolCfg.MaxConnIdleTime = pgCfg.MaxConnIdleTime
		}
	}
	poolCfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.New("creating pool error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("pinging pool error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}
