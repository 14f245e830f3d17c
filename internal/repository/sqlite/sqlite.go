// Package sqlite implements the repository interfaces using SQLite as the
// storage backend.
//
// WHY SQLITE?
// SQLite is an embedded database — it lives inside your Go binary as a single
// file. No separate database server to install, configure, or manage.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo, which means you need a C compiler installed and
// cross-compilation becomes painful. modernc.org/sqlite is a pure Go
// translation of the SQLite C code — works everywhere Go works.
package sqlite

import (
	"database/sql"
	"fmt"

	// BLANK IMPORT:
	// The sqlite package's init() registers itself with database/sql as a
	// driver named "sqlite". After this import, sql.Open("sqlite", ...)
	// knows how to talk to SQLite.
	_ "modernc.org/sqlite"
)

// DB owns the sql.DB connection pool and hands out the per-entity
// repositories that share it.
type DB struct {
	conn *sql.DB
}

// New opens a SQLite database, applies the connection pragmas, and creates
// the schema.
//
// dbPath examples:
//   - "data/billboard.db"  → file-based database (persistent)
//   - ":memory:"           → in-memory database (great for tests)
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// ONE CONNECTION, ON PURPOSE:
	// PRAGMAs apply per connection, and SQLite allows a single writer at a
	// time anyway. Pinning the pool to one connection guarantees
	// foreign_keys=ON holds for every query — with a pool, a freshly opened
	// connection would come up with foreign keys OFF and cascade deletes
	// would silently stop working. It also makes ":memory:" behave: each new
	// pooled connection would otherwise get its own empty in-memory database.
	conn.SetMaxOpenConns(1)

	// sql.Open doesn't actually connect — Ping forces the first connection
	// so a bad path surfaces here, not on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL mode allows concurrent reads while a write is in progress.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are OFF by default in SQLite (backwards compatibility).
	// The billboards→users cascade depends on this being ON.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool. Always defer this next to New —
// it flushes the WAL and releases the file lock.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Users returns the user repository backed by this database.
func (db *DB) Users() *UserDB {
	return &UserDB{conn: db.conn}
}

// Billboards returns the billboard repository backed by this database.
func (db *DB) Billboards() *BillboardDB {
	return &BillboardDB{conn: db.conn}
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS is idempotent, so
// this is safe to run on every startup.
//
// SCHEMA NOTES:
//   - INTEGER PRIMARY KEY AUTOINCREMENT → store-assigned, monotonically
//     increasing ids, never reused after a delete.
//   - UNIQUE on user_name/email/topic/description enforces the global
//     uniqueness invariants (and gives each column an implicit index).
//   - password is capped at 60 chars at the store level, matching the widest
//     supported hash format.
//   - ON DELETE CASCADE: deleting a user deletes all their billboards in the
//     same transaction. Requires PRAGMA foreign_keys=ON (set in New).
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			user_name         TEXT NOT NULL UNIQUE,
			email             TEXT NOT NULL UNIQUE,
			password          TEXT NOT NULL CHECK (length(password) <= 60),
			registration_time DATETIME NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS billboards (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			topic         TEXT NOT NULL UNIQUE,
			description   TEXT NOT NULL UNIQUE,
			user_id       INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			creation_time DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_billboards_user_id ON billboards(user_id);
	`)
	if err != nil {
		return fmt.Errorf("creating billboards table: %w", err)
	}

	return nil
}
