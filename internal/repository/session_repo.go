package repository

import (
	"encoding/json"
	"fmt"

	"edumarket/internal/models"
	"edumarket/internal/storage"
)

// SessionRepository persists the singleton current-user record
type SessionRepository struct {
	backend storage.Backend
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(backend storage.Backend) *SessionRepository {
	return &SessionRepository{backend: backend}
}

// GetCurrentUser returns the persisted current user, or nil when there is none
func (r *SessionRepository) GetCurrentUser() (*models.User, error) {
	data, found, err := r.backend.Get(storage.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read current user: %w", err)
	}
	if !found {
		return nil, nil
	}

	var user *models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode current user: %w", err)
	}
	return user, nil
}

// SetCurrentUser writes the full user record, or clears the slot when user is nil
func (r *SessionRepository) SetCurrentUser(user *models.User) error {
	if user == nil {
		return r.ClearCurrentUser()
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode current user: %w", err)
	}
	if err := r.backend.Set(storage.KeyCurrentUser, data); err != nil {
		return fmt.Errorf("failed to write current user: %w", err)
	}
	return nil
}

// ClearCurrentUser removes the persisted current user
func (r *SessionRepository) ClearCurrentUser() error {
	if err := r.backend.Delete(storage.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear current user: %w", err)
	}
	return nil
}
