// Package market is the pgx-backed store layer for the relational
// marketplace schema: the users and listings tables, their migrations, and
// the trigram search over listings.
package market

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cardtraders/cardtraders-infra/internal/errors"
)

const (
	poolMaxConns        = 4 // one-shot provisioning tools need very few conns
	poolConnectTimeout  = 10 * time.Second
	poolMaxConnLifetime = 30 * time.Minute
	poolMaxConnIdleTime = 5 * time.Minute
)

// NewPool opens a connection pool for the marketplace datastore and
// verifies it with a ping, so bad DSNs and bad credentials fail here with
// classified errors.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeConfig, "invalid marketplace DSN")
	}
	cfg.MaxConns = poolMaxConns
	cfg.MaxConnLifetime = poolMaxConnLifetime
	cfg.MaxConnIdleTime = poolMaxConnIdleTime

	connectCtx, cancel := context.WithTimeout(ctx, poolConnectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeConnect, "cannot create marketplace pool")
	}

	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, classifyPgErr(err, "cannot reach marketplace datastore")
	}

	return pool, nil
}
