package repository

import (
	"fmt"

	"edumarket/internal/models"
	"edumarket/internal/storage"
)

// ReviewRepository handles persistence of course reviews.
// It does not limit reviews per student; ReviewService does.
type ReviewRepository struct {
	reviews *Collection[models.Review]
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(backend storage.Backend) *ReviewRepository {
	return &ReviewRepository{
		reviews: NewCollection(backend, storage.KeyReviews, func(r models.Review) string { return r.ID }),
	}
}

// GetReviews retrieves the reviews of courseID, or every review when courseID is empty
func (r *ReviewRepository) GetReviews(courseID string) ([]models.Review, error) {
	var (
		reviews []models.Review
		err     error
	)
	if courseID == "" {
		reviews, err = r.reviews.List()
	} else {
		reviews, err = r.reviews.FindBy(func(rv models.Review) bool { return rv.CourseID == courseID })
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}

// SaveReview inserts a review or replaces the one with the same ID
func (r *ReviewRepository) SaveReview(review *models.Review) error {
	if err := r.reviews.Upsert(*review); err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}
