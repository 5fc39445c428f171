package database

import (
	"context"
	"fmt"
	"time"

	pgxzerolog "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/filadex/filadex/internal/config"
)

// NewPool builds a pgx connection pool from the database config. Queries are
// traced through New Relic when an application is provided, otherwise through
// zerolog at warn level.
func NewPool(ctx context.Context, cfg *config.Config, log zerolog.Logger, nrApp *newrelic.Application) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(cfg.Database.URL())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}

	pc.MaxConns = int32(cfg.Database.MaxOpenConns)
	pc.MinConns = int32(cfg.Database.MaxIdleConns)
	pc.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	pc.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second

	if nrApp != nil {
		pc.ConnConfig.Tracer = nrpgx5.NewTracer()
	} else {
		pc.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzerolog.NewLogger(log),
			LogLevel: tracelog.LogLevelWarn,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}
