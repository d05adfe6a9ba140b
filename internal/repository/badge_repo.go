package repository

import (
	"fmt"

	"edumarket/internal/models"
	"edumarket/internal/storage"
)

// BadgeRepository reads the static badge catalogue
type BadgeRepository struct {
	badges *Collection[models.Badge]
}

// NewBadgeRepository creates a new badge repository
func NewBadgeRepository(backend storage.Backend) *BadgeRepository {
	return &BadgeRepository{
		badges: NewCollection(backend, storage.KeyBadges, func(b models.Badge) string { return b.ID }),
	}
}

// GetBadges retrieves all badges
func (r *BadgeRepository) GetBadges() ([]models.Badge, error) {
	badges, err := r.badges.List()
	if err != nil {
		return nil, fmt.Errorf("failed to get badges: %w", err)
	}
	return badges, nil
}
