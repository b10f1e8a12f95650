package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"takeout/internal/pkg/config"
	"takeout/migrations"
	"takeout/pkg/logger"
)

// Migrate применяет все невыполненные миграции из migrations.FS.
// Для goose открывается отдельное database/sql соединение, пул приложения не затрагивается.
func Migrate(ctx context.Context, log logger.Logger, cfg *config.Database) error {
	connCfg, err := pgx.ParseConfig(newDsn(cfg))
	if err != nil {
		return fmt.Errorf("parse dsn: %w", err)
	}

	db := stdlib.OpenDB(*connCfg)
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close migration connection", logger.NewField("error", err))
		}
	}()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, res := range results {
		log.Info("migration applied",
			logger.NewField("version", res.Source.Version),
			logger.NewField("path", res.Source.Path),
			logger.NewField("duration", res.Duration.String()),
		)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}
	log.Info("database schema is up to date", logger.NewField("version", version))
	return nil
}
