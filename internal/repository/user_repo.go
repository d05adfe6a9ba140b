package repository

import (
	"fmt"

	"edumarket/internal/models"
	"edumarket/internal/storage"
)

// UserRepository handles persistence of user accounts
type UserRepository struct {
	users *Collection[models.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(backend storage.Backend) *UserRepository {
	return &UserRepository{
		users: NewCollection(backend, storage.KeyUsers, func(u models.User) string { return u.ID }),
	}
}

// GetAllUsers retrieves all users in stored order
func (r *UserRepository) GetAllUsers() ([]models.User, error) {
	users, err := r.users.List()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// GetUserByID retrieves a user by ID, or nil when absent
func (r *UserRepository) GetUserByID(id string) (*models.User, error) {
	user, err := r.users.Find(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUsersByEmail retrieves every user registered with email
func (r *UserRepository) GetUsersByEmail(email string) ([]models.User, error) {
	users, err := r.users.FindBy(func(u models.User) bool { return u.Email == email })
	if err != nil {
		return nil, fmt.Errorf("failed to get users by email: %w", err)
	}
	return users, nil
}

// GetUserByEmail retrieves the first user registered with email, or nil when absent
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	users, err := r.GetUsersByEmail(email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// SaveUser inserts the user or replaces the stored record with the same ID
func (r *UserRepository) SaveUser(user *models.User) error {
	if err := r.users.Upsert(*user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}
