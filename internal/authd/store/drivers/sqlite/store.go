package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/keyfold/authd/internal/authd/store"

	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// sqlite permits a single writer; a single pooled connection also
	// keeps :memory: databases shared across all queries.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Accounts() store.Accounts { return &accountsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConflict translates a sqlite unique-constraint violation into the
// driver-agnostic store.ErrAlreadyExists.
func mapConflict(err error) error {
	var serr *sqlite3.Error
	if errors.As(err, &serr) && serr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE {
		return store.ErrAlreadyExists
	}
	return err
}
