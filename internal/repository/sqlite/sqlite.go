// Package sqlite implements the repository interfaces using SQLite as the storage backend.
//
// WHY SQLITE?
// SQLite is an embedded database — it lives inside your Go binary as a single file.
// No separate database server to install, configure, or manage. The original
// deployment used a document store; we only ever do single-row create/read/
// update by id plus simple filters, so any persistent collection works, and
// an embedded one keeps the whole system a single process.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo (calls C code from Go), which means you need a C compiler
// installed and cross-compilation becomes painful. modernc.org/sqlite is a pure Go
// translation of the SQLite C code — no C compiler needed, works everywhere Go works.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// BLANK IMPORT:
	// The sqlite package's init() registers itself with database/sql as a
	// driver named "sqlite". After this import, sql.Open("sqlite", ...)
	// knows how to talk to SQLite.
	_ "modernc.org/sqlite"

	"github.com/sakif/election-manager/internal/model"
	"github.com/sakif/election-manager/internal/repository"
)

// DB wraps a sql.DB connection pool and provides the repository methods
// for users, candidates, campaigns and programs.
type DB struct {
	conn *sql.DB
}

// statements below expect *DB to satisfy every repository interface.
var _ repository.StatsRepository = (*DB)(nil)

// New creates a new SQLite database connection and runs migrations.
//
// dbPath examples:
//   - "data/elections.db"  → file-based database (persistent)
//   - ":memory:"           → in-memory database (great for tests, lost on close)
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// Every pooled connection to ":memory:" gets its OWN empty database.
	// Pin the pool to one connection so the schema survives.
	if dbPath == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	// Ping forces an immediate connection so a bad path or permissions
	// problem surfaces here, not on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL mode allows concurrent reads while a write is happening —
	// important for a web server where multiple requests hit the DB.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Foreign keys are OFF by default in SQLite (backwards compatibility).
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

// Close closes the database connection pool. Wherever you call New(),
// immediately defer Close().
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS is idempotent —
// safe to run on every startup against an existing database.
//
// The UNIQUE constraint on users.email is what enforces the
// one-account-per-email invariant; the repository translates the
// constraint violation into a domain error (see user.go).
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			name          TEXT NOT NULL,
			role          TEXT NOT NULL,
			token         TEXT NOT NULL DEFAULT '',
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_users_token ON users(token);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS candidates (
			id          TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL,
			name        TEXT NOT NULL,
			class_year  TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			photo       TEXT NOT NULL DEFAULT '',
			manifesto   TEXT NOT NULL DEFAULT '',
			created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating candidates table: %w", err)
	}

	// events and materials are JSON arrays — never queried, only stored
	// and returned, so a TEXT column beats two extra tables.
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS campaigns (
			id           TEXT PRIMARY KEY,
			candidate_id TEXT NOT NULL,
			title        TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			status       TEXT NOT NULL,
			events       TEXT NOT NULL DEFAULT '[]',
			materials    TEXT NOT NULL DEFAULT '[]',
			created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_campaigns_candidate_id ON campaigns(candidate_id);
	`)
	if err != nil {
		return fmt.Errorf("creating campaigns table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS programs (
			id              TEXT PRIMARY KEY,
			candidate_id    TEXT NOT NULL,
			title           TEXT NOT NULL,
			content         TEXT NOT NULL DEFAULT '',
			generated_by_ai INTEGER NOT NULL DEFAULT 0,
			created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_programs_candidate_id ON programs(candidate_id);
	`)
	if err != nil {
		return fmt.Errorf("creating programs table: %w", err)
	}

	return nil
}

// Stats counts records for the dashboard. Four COUNT queries — simple and
// plenty fast at this scale; a single UNION query would save round trips
// but cost readability.
func (db *DB) Stats(ctx context.Context) (*model.DashboardStats, error) {
	var stats model.DashboardStats

	queries := []struct {
		sql  string
		dest *int
	}{
		{`SELECT COUNT(*) FROM candidates`, &stats.TotalCandidates},
		{`SELECT COUNT(*) FROM campaigns`, &stats.TotalCampaigns},
		{`SELECT COUNT(*) FROM campaigns WHERE status = 'active'`, &stats.ActiveCampaigns},
		{`SELECT COUNT(*) FROM programs`, &stats.TotalPrograms},
	}

	for _, q := range queries {
		if err := db.conn.QueryRowContext(ctx, q.sql).Scan(q.dest); err != nil {
			return nil, fmt.Errorf("sqlite: counting for dashboard stats: %w", err)
		}
	}

	return &stats, nil
}
