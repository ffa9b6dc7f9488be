package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"offerchain/internal/config/configs"
)

// NewPostgresPool creates the single pgxpool.Pool the process shares. The
// pool is explicitly constructed here and handed to the repositories by
// main; nothing else holds a storage handle. Connectivity is verified with
// a 5 second ping; on failure the pool is closed and an error returned.
// The caller must close the returned pool when it is no longer needed.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
