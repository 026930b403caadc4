// Package kv implements the repository interfaces on top of an ordered,
// durable key-value store backed by SQLite (modernc.org/sqlite, pure Go —
// no CGo, no external database server).
//
// The store is a single `records` table keyed by (bucket, key). Each entity
// type occupies its own bucket, named once at startup; enumeration within a
// bucket is in ascending key order. Record keys are xid strings, which sort
// by creation time, so key order equals insertion order.
//
// Values are the JSON encoding of the model structs. The store itself never
// interprets them — the typed repositories in this package do.
package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// Bucket names, one partition per entity type. Fixed at startup, never
// reused across types.
const (
	bucketAdmins        = "admins"
	bucketVolunteers    = "volunteers"
	bucketEvents        = "events"
	bucketRegistrations = "registrations"
	bucketFeedbacks     = "feedbacks"
)

// errKeyNotFound reports a missing key inside a bucket. The typed
// repositories translate it into an apperror.NotFound for their resource.
var errKeyNotFound = errors.New("kv: key not found")

// Store wraps the SQLite connection pool behind the bucket API.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the store at path and runs migrations.
// Use ":memory:" for an in-memory store in tests.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("kv: opening store: %w", err)
	}

	// Force an immediate connection so a bad path fails here, not on the
	// first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("kv: pinging store: %w", err)
	}

	// WAL lets reads proceed while a write is in flight.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("kv: setting WAL mode: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("kv: running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying connection pool, flushing the WAL.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	_, err := s.conn.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			bucket TEXT NOT NULL,
			key    TEXT NOT NULL,
			value  BLOB NOT NULL,
			PRIMARY KEY (bucket, key)
		);
	`)
	if err != nil {
		return fmt.Errorf("creating records table: %w", err)
	}
	return nil
}

// Bucket returns a handle on the named partition. Buckets need no creation
// step — a bucket is just a key prefix in the records table.
func (s *Store) Bucket(name string) Bucket {
	return Bucket{store: s, name: name}
}

// Bucket is a named partition of the store. The zero value is not usable;
// obtain one from Store.Bucket.
type Bucket struct {
	store *Store
	name  string
}

// Put stores value under key, overwriting any previous value.
func (b Bucket) Put(ctx context.Context, key string, value []byte) error {
	_, err := b.store.conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO records (bucket, key, value) VALUES (?, ?, ?)`,
		b.name, key, value,
	)
	if err != nil {
		return fmt.Errorf("kv: putting %s/%s: %w", b.name, key, err)
	}
	return nil
}

// Get returns the value stored under key, or errKeyNotFound if absent.
func (b Bucket) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.store.conn.QueryRowContext(ctx,
		`SELECT value FROM records WHERE bucket = ? AND key = ?`,
		b.name, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errKeyNotFound
		}
		return nil, fmt.Errorf("kv: getting %s/%s: %w", b.name, key, err)
	}
	return value, nil
}

// List returns every value in the bucket in ascending key order.
func (b Bucket) List(ctx context.Context) ([][]byte, error) {
	return b.list(ctx, `SELECT value FROM records WHERE bucket = ? ORDER BY key ASC`, b.name)
}

// ListRange returns the half-open slice [start, end) of List. Indices
// outside the listing silently clamp to its bounds, matching array-slice
// semantics; callers must ensure start < end.
func (b Bucket) ListRange(ctx context.Context, start, end int) ([][]byte, error) {
	if start < 0 {
		start = 0
	}
	if end <= start {
		return [][]byte{}, nil
	}
	return b.list(ctx,
		`SELECT value FROM records WHERE bucket = ? ORDER BY key ASC LIMIT ? OFFSET ?`,
		b.name, end-start, start,
	)
}

// Count returns the number of records in the bucket.
func (b Bucket) Count(ctx context.Context) (int, error) {
	var n int
	err := b.store.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM records WHERE bucket = ?`, b.name,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("kv: counting %s: %w", b.name, err)
	}
	return n, nil
}

func (b Bucket) list(ctx context.Context, query string, args ...any) ([][]byte, error) {
	rows, err := b.store.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("kv: listing %s: %w", b.name, err)
	}
	defer rows.Close()

	values := [][]byte{}
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("kv: scanning %s row: %w", b.name, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("kv: iterating %s rows: %w", b.name, err)
	}
	return values, nil
}
