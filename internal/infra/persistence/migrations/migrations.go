// Package migrations embeds the schema for each supported dialect and applies
// it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"log/slog"

	"gatekeeper/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedded embed.FS

// Up applies all pending migrations for dialect. Only the goose Provider API
// is used; package-level goose state stays untouched.
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect, logger *slog.Logger) error {
	dir, err := dirFor(dialect)
	if err != nil {
		return err
	}

	fsys, err := fs.Sub(embedded, dir)
	if err != nil {
		return errors.Wrapf(err, "open embedded migrations %s", dir)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return errors.Wrap(err, "create migration provider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	for _, result := range results {
		logger.Info("Applied migration",
			slog.String("dialect", string(dialect)),
			slog.Int64("version", result.Source.Version),
			slog.Duration("duration", result.Duration),
		)
	}

	return nil
}

func dirFor(dialect goose.Dialect) (string, error) {
	switch dialect {
	case goose.DialectPostgres:
		return "postgres", nil
	case goose.DialectSQLite3:
		return "sqlite", nil
	default:
		return "", errors.Errorf("no migrations for dialect %q", dialect)
	}
}
