package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campuskit/campus-services/internal/config"
)

// Connect creates a PostgreSQL connection pool, retrying until the database
// is reachable or the retry budget is exhausted. Containers often come up
// before their database does, so the service waits instead of requiring the
// orchestrator to sequence startup. Exhausting the budget is a startup
// failure: the caller must not begin serving.
func Connect(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxDBConns

	var lastErr error
	for attempt := 1; attempt <= cfg.DBConnectAttempts; attempt++ {
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				log.Info().
					Int("attempt", attempt).
					Int32("max_conns", cfg.MaxDBConns).
					Msg("PostgreSQL connected")
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", cfg.DBConnectAttempts).
			Dur("retry_in", cfg.DBConnectDelay).
			Msg("Database not ready, retrying")

		if attempt < cfg.DBConnectAttempts {
			select {
			case <-time.After(cfg.DBConnectDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("database unreachable after %d attempts: %w", cfg.DBConnectAttempts, lastErr)
}
