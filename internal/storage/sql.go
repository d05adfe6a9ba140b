package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"edumarket/internal/database"
)

// SQLBackend stores every key as one row of the kv_store table
type SQLBackend struct {
	db *database.DB
}

// NewSQLBackend wraps an initialized and migrated database
func NewSQLBackend(db *database.DB) *SQLBackend {
	return &SQLBackend{db: db}
}

func (s *SQLBackend) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT store_value FROM kv_store WHERE store_key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *SQLBackend) Set(key string, value []byte) error {
	return database.UpsertKV(s.db, key, value)
}

// SetMany writes every value in one transaction
func (s *SQLBackend) SetMany(values map[string][]byte) error {
	return s.db.WithTx(func(tx *database.Tx) error {
		for k, v := range values {
			if err := database.UpsertKV(tx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLBackend) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv_store WHERE store_key = ?", key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Migrations lists the schema migrations applied to the database
func (s *SQLBackend) Migrations() ([]string, error) {
	return s.db.AppliedMigrations()
}

func (s *SQLBackend) Close() error {
	return s.db.Close()
}
