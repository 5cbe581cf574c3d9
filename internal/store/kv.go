package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// AuditDB provides SQLite-based storage for serialized audit state.
// Each audit variant occupies one row keyed by its storage key.
type AuditDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures AuditDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates an AuditDB in the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*AuditDB, error) {
	dbPath := filepath.Join(dbDir, "audit.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses query-parameter connection strings.
	// mode=rw prevents creating new files; mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	adb := &AuditDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := adb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return adb, nil
}

// Close closes the database connection.
func (adb *AuditDB) Close() error {
	return adb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (adb *AuditDB) createTables() error {
	schema := `
	-- Audit state rows, one per audit variant, value is serialized JSON
	CREATE TABLE IF NOT EXISTS audit_state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := adb.db.ExecContext(context.Background(), schema)
	return err
}

// Get retrieves the value stored under key.
// The boolean is false when no row exists for the key.
func (adb *AuditDB) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := adb.db.QueryRowContext(ctx, "SELECT value FROM audit_state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get state: %w", err)
	}
	return value, true, nil
}

// Put inserts or replaces the value stored under key.
func (adb *AuditDB) Put(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO audit_state (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = CURRENT_TIMESTAMP
	`

	if _, err := adb.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to put state: %w", err)
	}
	return nil
}

// Delete removes the row stored under key. Missing rows are not an error.
func (adb *AuditDB) Delete(ctx context.Context, key string) error {
	if _, err := adb.db.ExecContext(ctx, "DELETE FROM audit_state WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete state: %w", err)
	}
	return nil
}

// Keys returns all stored state keys in sorted order.
func (adb *AuditDB) Keys(ctx context.Context) ([]string, error) {
	rows, err := adb.db.QueryContext(ctx, "SELECT key FROM audit_state ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}
