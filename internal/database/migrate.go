package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/adamanr/workforce_service/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies the pending up migrations from the configured directory.
func Migrate(cfg *config.Config, logger *slog.Logger) error {
	m, err := migrate.New("file://"+cfg.Migrations.Dir, cfg.DatabaseURL()+"?sslmode=disable")
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn("Error closing migrations", slog.Any("source_error", srcErr), slog.Any("db_error", dbErr))
		}
	}()

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("Migrations are up to date")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Info("Migrations applied", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	return nil
}
