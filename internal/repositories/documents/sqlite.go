package documents

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/battlemap-api/internal/errors"
	"github.com/KirkDiggler/battlemap-api/internal/pkg/clock"
)

// SQLiteConfig contains configuration for the SQLite document repository.
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", strings.TrimSpace(cfg.Path), vb)
	return vb.Build()
}

// SQLiteRepository stores documents in a single SQLite table.
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens the database at cfg.Path and applies the
// embedded migrations.
func NewSQLiteRepository(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "ping sqlite db")
	}
	if err := applyMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &SQLiteRepository{db: db, clock: c}, nil
}

// Close closes the database handle.
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Collection, input.ID); err != nil {
		return nil, err
	}

	var (
		data      string
		updatedAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT data, updated_at FROM documents WHERE collection = ? AND id = ?`,
		string(input.Collection), input.ID,
	).Scan(&data, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("%s/%s not found", input.Collection, input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get %s/%s", input.Collection, input.ID)
	}

	return &GetOutput{Document: &Document{
		Collection: input.Collection,
		ID:         input.ID,
		Data:       []byte(data),
		UpdatedAt:  fromMillis(updatedAt),
	}}, nil
}

func (r *SQLiteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if !input.Collection.Valid() {
		return nil, errors.InvalidArgumentf(errCollectionInvalid, input.Collection)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, data, updated_at FROM documents WHERE collection = ? ORDER BY id`,
		string(input.Collection))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", input.Collection)
	}
	defer func() { _ = rows.Close() }()

	docs := []*Document{}
	for rows.Next() {
		var (
			id, data  string
			updatedAt int64
		)
		if err := rows.Scan(&id, &data, &updatedAt); err != nil {
			return nil, errors.Wrapf(err, "failed to scan %s", input.Collection)
		}
		docs = append(docs, &Document{
			Collection: input.Collection,
			ID:         id,
			Data:       []byte(data),
			UpdatedAt:  fromMillis(updatedAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", input.Collection)
	}
	return &ListOutput{Documents: docs}, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateKey(input.Collection, input.ID); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var existing []byte
	var current string
	err = tx.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = ? AND id = ?`,
		string(input.Collection), input.ID,
	).Scan(&current)
	switch {
	case err == nil:
		existing = []byte(current)
	case errors.Is(err, sql.ErrNoRows):
	default:
		return nil, errors.Wrapf(err, "failed to read %s/%s", input.Collection, input.ID)
	}

	data, err := merge(existing, input.Data)
	if err != nil {
		return nil, err
	}
	now := r.clock.Now()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (collection, id, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(input.Collection), input.ID, string(data), toMillis(now),
	); err != nil {
		return nil, errors.Wrapf(err, "failed to save %s/%s", input.Collection, input.ID)
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit %s/%s", input.Collection, input.ID)
	}

	return &SaveOutput{Document: &Document{
		Collection: input.Collection,
		ID:         input.ID,
		Data:       data,
		UpdatedAt:  fromMillis(toMillis(now)),
	}}, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.Collection, input.ID); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`,
		string(input.Collection), input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete %s/%s", input.Collection, input.ID)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return nil, errors.NotFoundf("%s/%s not found", input.Collection, input.ID)
	}
	return &DeleteOutput{}, nil
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
