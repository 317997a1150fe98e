// Package sqlite implements the credential and session stores on an embedded
// SQLite database through database/sql and the pure-Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"gatekeeper/config"
	"gatekeeper/internal/domain/lifecycle"
	"gatekeeper/internal/errors"
	"gatekeeper/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	_ "modernc.org/sqlite"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured database file. Migrations run in the start hook.
func New(params Params) (*sql.DB, error) {
	db, err := openDB(params.Config.SQLite.Path)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return migrations.Up(ctx, db, goose.DialectSQLite3, params.Logger)
		},
		OnStop: func(_ context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

// Open opens path and applies migrations immediately. Used outside the fx graph.
func Open(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.Up(ctx, db, goose.DialectSQLite3, logger); err != nil {
		_ = db.Close()

		return nil, err
	}

	return db, nil
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite")
	}

	// One connection serializes writers and keeps :memory: databases alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}

func dsn(path string) string {
	pragmas := url.Values{}
	pragmas.Add("_pragma", "foreign_keys(1)")
	pragmas.Add("_pragma", "busy_timeout(5000)")
	if path != ":memory:" && !strings.Contains(path, "mode=memory") {
		pragmas.Add("_pragma", "journal_mode(WAL)")
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return path + sep + pragmas.Encode()
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
