package client

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Storage persists small values under fixed keys across process restarts.
type Storage interface {
	// Get returns nil when the key is absent.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	// Delete removes all given keys in one transaction.
	Delete(keys ...string) error
}

// SQLiteStorage is a single-table key-value store on local disk, the
// client-side stand-in for browser local storage.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open client storage: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS session_store (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init client storage: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM session_store WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session_store[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStorage) Set(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO session_store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set session_store[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStorage) Delete(keys ...string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("delete session_store keys: %w", err)
	}
	for _, key := range keys {
		if _, err := tx.Exec(`DELETE FROM session_store WHERE key = ?`, key); err != nil {
			tx.Rollback()
			return fmt.Errorf("delete session_store[%s]: %w", key, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
