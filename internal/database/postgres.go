package database

import (
	"context"
	"log/slog"

	"github.com/adamanr/workforce_service/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPool(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	if err != nil {
		logger.Error("Error parsing DB config", slog.String("error", err.Error()))
		return nil, err
	}

	if cfg.Database.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Database.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Error connecting to DB", slog.String("error", err.Error()))
		return nil, err
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Error("Error pinging DB", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Connected to DB successfully")
	return pool, nil
}
