// Package migrations embeds the schema and applies it in file-name order.
package migrations

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"reservation-book/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed *.sql
var files embed.FS

var ErrMigrationFailed = errs.New("migration failed")

const createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version     TEXT PRIMARY KEY,
    applied_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Versions lists the embedded migration files in the order Apply runs them.
func Versions() ([]string, error) {
	entries, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(entries)
	return entries, nil
}

// Apply runs every migration that is not yet recorded in schema_migrations.
// Each file runs in its own transaction together with its version row.
func Apply(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) (int, error) {
	if _, err := pool.Exec(ctx, createVersionTable); err != nil {
		return 0, errs.Mark(errs.Wrap(err, "create schema_migrations"), ErrMigrationFailed)
	}

	versions, err := Versions()
	if err != nil {
		return 0, errs.Mark(err, ErrMigrationFailed)
	}

	applied := 0
	for _, version := range versions {
		done, err := apply(ctx, pool, version)
		if err != nil {
			return applied, errs.Mark(errs.Wrapf(err, "apply %s", version), ErrMigrationFailed)
		}
		if done {
			applied++
			logger.Info("migration applied", "version", version)
		}
	}
	return applied, nil
}

func apply(ctx context.Context, pool *pgxpool.Pool, version string) (bool, error) {
	body, err := files.ReadFile(version)
	if err != nil {
		return false, err
	}

	done := false
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`INSERT INTO schema_migrations (version) VALUES ($1) ON CONFLICT (version) DO NOTHING`,
			strings.TrimSuffix(version, ".sql"))
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		if _, err := tx.Exec(ctx, string(body)); err != nil {
			return err
		}
		done = true
		return nil
	})
	return done, err
}
