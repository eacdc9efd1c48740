// Package store persists styleguides and brand-asset sets. The driver is
// chosen by configuration: a local sqlite file by default, or a remote
// libsql database when a database URL is configured.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"                      // Register sqlite3 driver
	_ "github.com/tursodatabase/libsql-client-go/libsql" // Register libsql driver

	"github.com/MarkupMedia/pagetags-go/config"
)

// DB holds the database connection.
type DB struct {
	Conn *sql.DB
}

// NewDB opens the configured database and ensures the schema exists.
func NewDB() (*DB, error) {
	driver := config.DBDriver
	dsn := config.SQLitePath
	if config.LibSQLURL != "" {
		driver = "libsql"
		dsn = config.LibSQLURL
		if config.LibSQLToken != "" {
			dsn += "?authToken=" + config.LibSQLToken
		}
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	db := &DB{Conn: conn}
	if err := db.ensureSchema(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS styleguides (
			id TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS brand_assets (
			id TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// SaveStyleguide upserts a styleguide payload, bumping its version.
func (db *DB) SaveStyleguide(id string, payload []byte) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := db.Conn.Exec(`
		INSERT INTO styleguides (id, payload, version, updated_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(id) DO UPDATE SET
			payload = excluded.payload,
			version = styleguides.version + 1,
			updated_at = excluded.updated_at`,
		id, string(payload), now)
	if err != nil {
		return 0, fmt.Errorf("failed to save styleguide %s: %w", id, err)
	}
	var version int64
	if err := db.Conn.QueryRow(`SELECT version FROM styleguides WHERE id = ?`, id).Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read styleguide version: %w", err)
	}
	return version, nil
}

// GetStyleguide fetches a styleguide payload and its version.
func (db *DB) GetStyleguide(id string) ([]byte, int64, error) {
	var payload string
	var version int64
	err := db.Conn.QueryRow(`SELECT payload, version FROM styleguides WHERE id = ?`, id).Scan(&payload, &version)
	if err == sql.ErrNoRows {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load styleguide %s: %w", id, err)
	}
	return []byte(payload), version, nil
}

// SaveBrandAssets upserts a brand-asset payload.
func (db *DB) SaveBrandAssets(id string, payload []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := db.Conn.Exec(`
		INSERT INTO brand_assets (id, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		id, string(payload), now)
	if err != nil {
		return fmt.Errorf("failed to save brand assets %s: %w", id, err)
	}
	return nil
}

// GetBrandAssets fetches a brand-asset payload.
func (db *DB) GetBrandAssets(id string) ([]byte, error) {
	var payload string
	err := db.Conn.QueryRow(`SELECT payload FROM brand_assets WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load brand assets %s: %w", id, err)
	}
	return []byte(payload), nil
}

// Close closes the connection.
func (db *DB) Close() error {
	return db.Conn.Close()
}
