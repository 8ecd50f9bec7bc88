package database

import (
	"catalog/infra/postgres"
	"catalog/infra/sqlite"
	"catalog/infra/store"
	"catalog/pkg/config"
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Open connects to the configured engine and makes sure the catalog schema exists.
func Open(ctx context.Context, cfg *config.AppConfig) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.DatabaseDriver {
	case "postgres":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = postgres.DSN(
				cfg.PostgresHost,
				cfg.PostgresPort,
				cfg.PostgresUsername,
				cfg.PostgresPassword,
				cfg.PostgresDatabase,
				cfg.PostgresSSLMode,
			)
		}
		db, err = postgres.Connect(ctx, dsn)
	case "sqlite":
		path := cfg.DatabaseURL
		if path == "" {
			path = cfg.SQLitePath
		}
		db, err = sqlite.Open(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	zap.L().Info("Database ready", zap.String("driver", cfg.DatabaseDriver))
	return db, nil
}
