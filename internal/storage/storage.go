// Package storage provides the key-value media behind the local store.
// Every backend maps a fixed string key to one serialized JSON document.
package storage

import (
	"errors"
	"fmt"

	"edumarket/internal/config"
	"edumarket/internal/database"

	"go.uber.org/zap"
)

// Fixed keys of the persisted state layout
const (
	KeyUsers       = "users"
	KeyCourses     = "courses"
	KeyChunks      = "chunks"
	KeyReviews     = "reviews"
	KeyBadges      = "badges"
	KeyProgress    = "progress"
	KeyCurrentUser = "current_user"
)

// AllKeys lists every key in the persisted layout
var AllKeys = []string{
	KeyUsers,
	KeyCourses,
	KeyChunks,
	KeyReviews,
	KeyBadges,
	KeyProgress,
	KeyCurrentUser,
}

// ErrClosed is returned by operations on a closed backend
var ErrClosed = errors.New("storage backend closed")

// Backend is a synchronous key-value medium.
// Get reports found=false with a nil error when the key is absent.
type Backend interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// BatchWriter is implemented by backends that can write several keys atomically
type BatchWriter interface {
	SetMany(values map[string][]byte) error
}

// Open creates the backend selected by cfg.StorageBackend
func Open(cfg *config.Config, logger *zap.Logger) (Backend, error) {
	switch cfg.StorageBackend {
	case "memory":
		logger.Info("Using in-memory storage")
		return NewMemoryBackend(), nil
	case "bolt", "":
		backend, err := NewBoltBackend(cfg.BoltPath)
		if err != nil {
			return nil, err
		}
		logger.Info("Using bolt storage", zap.String("path", cfg.BoltPath))
		return backend, nil
	case "sql":
		db, err := database.InitializeWithConfig(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		backend := NewSQLBackend(db)
		applied, err := backend.Migrations()
		if err != nil {
			backend.Close()
			return nil, err
		}
		logger.Info("Using SQL storage",
			zap.String("type", cfg.DatabaseType),
			zap.Strings("migrations", applied),
		)
		return backend, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.StorageBackend)
	}
}
