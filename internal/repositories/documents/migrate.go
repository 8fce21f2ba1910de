package documents

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/battlemap-api/internal/errors"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const (
	migrationTable = "schema_migrations"
	migrateUpTag   = "-- +migrate Up"
	migrateDownTag = "-- +migrate Down"
)

// applyMigrations runs each embedded migration at most once.
func applyMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationTable+` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`); err != nil {
		return errors.Wrap(err, "ensure migration table")
	}

	entries, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "read migrations")
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, name := range files {
		var found int
		err := db.QueryRowContext(ctx, "SELECT 1 FROM "+migrationTable+" WHERE name = ?", name).Scan(&found)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return errors.Wrapf(err, "check migration %s", name)
		}

		content, err := fs.ReadFile(migrationFS, "migrations/"+name)
		if err != nil {
			return errors.Wrapf(err, "read migration %s", name)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return errors.Wrapf(err, "begin migration %s", name)
		}
		if _, err := tx.ExecContext(ctx, upSection(string(content))); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "exec migration %s", name)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)",
			name, time.Now().UTC().UnixMilli()); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "record migration %s", name)
		}
		if err := tx.Commit(); err != nil {
			return errors.Wrapf(err, "commit migration %s", name)
		}
	}
	return nil
}

func upSection(content string) string {
	start := strings.Index(content, migrateUpTag)
	if start == -1 {
		return content
	}
	content = content[start+len(migrateUpTag):]
	if end := strings.Index(content, migrateDownTag); end != -1 {
		content = content[:end]
	}
	return content
}
