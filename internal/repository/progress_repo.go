package repository

import (
	"fmt"

	"edumarket/internal/models"
	"edumarket/internal/storage"
)

// ProgressRepository handles persistence of per-course student progress
type ProgressRepository struct {
	progress *Collection[models.UserProgress]
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(backend storage.Backend) *ProgressRepository {
	return &ProgressRepository{
		progress: NewCollection(backend, storage.KeyProgress, progressKey),
	}
}

// progressKey is the composite (userId, courseId) identity
func progressKey(p models.UserProgress) string {
	return p.UserID + "\x00" + p.CourseID
}

// GetUserProgress retrieves every progress record of userID
func (r *ProgressRepository) GetUserProgress(userID string) ([]models.UserProgress, error) {
	progress, err := r.progress.FindBy(func(p models.UserProgress) bool { return p.UserID == userID })
	if err != nil {
		return nil, fmt.Errorf("failed to get user progress: %w", err)
	}
	return progress, nil
}

// GetProgress retrieves the progress of userID in courseID, or nil when absent
func (r *ProgressRepository) GetProgress(userID, courseID string) (*models.UserProgress, error) {
	progress, err := r.progress.Find(progressKey(models.UserProgress{UserID: userID, CourseID: courseID}))
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return progress, nil
}

// SaveUserProgress inserts the record or replaces the one with the same (userId, courseId)
func (r *ProgressRepository) SaveUserProgress(progress *models.UserProgress) error {
	if err := r.progress.Upsert(*progress); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}
