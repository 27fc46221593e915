// Package sqlite provides SQLite-based storage for scrape results.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait 5 seconds before failing on lock contention instead of
	// returning "database is locked" immediately.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL mode is faster for writes and allows concurrent reads, but
	// it is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS groups (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			url TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			group_id TEXT NOT NULL REFERENCES groups(id),
			author_name TEXT,
			author_profile_url TEXT,
			content TEXT,
			timestamp TEXT,
			reactions_total INTEGER NOT NULL DEFAULT 0,
			reactions_like INTEGER NOT NULL DEFAULT 0,
			reactions_love INTEGER NOT NULL DEFAULT 0,
			reactions_haha INTEGER NOT NULL DEFAULT 0,
			reactions_wow INTEGER NOT NULL DEFAULT 0,
			reactions_sad INTEGER NOT NULL DEFAULT 0,
			reactions_angry INTEGER NOT NULL DEFAULT 0,
			comments_count INTEGER NOT NULL DEFAULT 0,
			scraped_at TEXT
		);

		CREATE TABLE IF NOT EXISTS comments (
			id TEXT PRIMARY KEY,
			post_id TEXT NOT NULL REFERENCES posts(id),
			parent_comment_id TEXT REFERENCES comments(id),
			position INTEGER NOT NULL DEFAULT 0,
			author_name TEXT,
			author_profile_url TEXT,
			content TEXT,
			timestamp TEXT,
			reactions_total INTEGER NOT NULL DEFAULT 0,
			reactions_like INTEGER NOT NULL DEFAULT 0,
			reactions_love INTEGER NOT NULL DEFAULT 0,
			reactions_haha INTEGER NOT NULL DEFAULT 0,
			reactions_wow INTEGER NOT NULL DEFAULT 0,
			reactions_sad INTEGER NOT NULL DEFAULT 0,
			reactions_angry INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS scrapes (
			id TEXT PRIMARY KEY,
			group_id TEXT NOT NULL REFERENCES groups(id),
			scraped_at TEXT NOT NULL,
			since TEXT NOT NULL,
			until TEXT NOT NULL,
			post_count INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_posts_group ON posts(group_id);
		CREATE INDEX IF NOT EXISTS idx_posts_timestamp ON posts(timestamp);
		CREATE INDEX IF NOT EXISTS idx_comments_post ON comments(post_id);
		CREATE INDEX IF NOT EXISTS idx_comments_parent ON comments(parent_comment_id);
		CREATE INDEX IF NOT EXISTS idx_scrapes_group ON scrapes(group_id);
	`

	_, err := db.db.Exec(schema)
	return err
}
