package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/levelup/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/levelup/internal/services/game/storage/integrity"
	"github.com/louisbranch/levelup/internal/services/game/storage/sqlite/db"
	"github.com/louisbranch/levelup/internal/services/game/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis reverses toMillis for persisted millisecond timestamps.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store provides a SQLite-backed store for either the content catalog or
// character progression, depending on how it was opened.
type Store struct {
	sqlDB   *sql.DB
	q       *db.Queries
	keyring *integrity.Keyring
	now     func() time.Time
}

func (s *Store) withTx(tx *sql.Tx) *Store {
	if s == nil || tx == nil {
		return s
	}
	cloned := *s
	cloned.q = s.q.WithTx(tx)
	return &cloned
}

// Option configures store behavior.
type Option func(*Store)

// WithKeyring signs every written progression and verifies it on read.
func WithKeyring(keyring *integrity.Keyring) Option {
	return func(s *Store) {
		s.keyring = keyring
	}
}

// WithClock overrides the timestamp source used for progression writes.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// OpenContent opens a SQLite content catalog store at the provided path.
func OpenContent(path string, opts ...Option) (*Store, error) {
	return openStore(path, migrations.ContentFS, "content", opts)
}

// OpenProgression opens a SQLite character progression store at the provided path.
func OpenProgression(path string, opts ...Option) (*Store, error) {
	return openStore(path, migrations.ProgressionFS, "progression", opts)
}

// Close closes the underlying SQLite database.
//
// Close is intentionally nil-safe so callers can defer it in all startup paths.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RunInTx runs fn against a store bound to one transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
func (s *Store) RunInTx(ctx context.Context, fn func(tx *Store) error) error {
	if err := s.validate(ctx); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(s.withTx(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *Store) validate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// openStore boots a SQLite bundle for a domain purpose (content/progression)
// and applies embedded migrations before the store is handed to higher layers.
func openStore(path string, migrationFS fs.FS, migrationRoot string, opts []Option) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{
		sqlDB: sqlDB,
		q:     db.New(sqlDB),
		now:   time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}

	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrationFS, migrationRoot); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}
