package infra

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers the "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql migration pairs from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrateUp applies all pending schema migrations from dir against the
// database at dsn. A no-op when the schema is already current.
func MigrateUp(dsn, dir string, logger *slog.Logger) error {
	migrator, err := migrate.New("file://"+dir, pgx5DSN(dsn))
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		if srcErr != nil {
			logger.Warn("close migration source", "error", srcErr)
		}
		if dbErr != nil {
			logger.Warn("close migration db", "error", dbErr)
		}
	}()

	version, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is dirty at migration version %d, manual intervention required", version)
	}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("schema up to date", "version", version)
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	applied, _, _ := migrator.Version()
	logger.Info("migrations applied", "from", version, "to", applied)
	return nil
}

// pgx5DSN rewrites postgres:// style URLs to the pgx5:// scheme the
// golang-migrate pgx/v5 driver expects.
func pgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
