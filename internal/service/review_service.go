package service

import (
	"fmt"
	"strings"
	"time"

	"edumarket/internal/models"
	"edumarket/internal/repository"
	"edumarket/internal/security"
	"edumarket/internal/validation"

	"go.uber.org/zap"
)

// ReviewService handles course reviews
type ReviewService struct {
	courseRepo *repository.CourseRepository
	reviewRepo *repository.ReviewRepository
	logger     *zap.Logger
	now        func() time.Time
}

// NewReviewService creates a new review service
func NewReviewService(courseRepo *repository.CourseRepository, reviewRepo *repository.ReviewRepository, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		courseRepo: courseRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// SubmitReview records an enrolled student's single review of a course
// and folds the rating into the course aggregates
func (s *ReviewService) SubmitReview(sess *Session, courseID string, rating int, comment string) (*models.Review, error) {
	student, err := requireStudent(sess)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateRating(rating); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetCourseByID(courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	if !student.IsEnrolled(courseID) {
		return nil, ErrNotEnrolled
	}

	existing, err := s.reviewRepo.GetReviews(courseID)
	if err != nil {
		return nil, err
	}
	for _, r := range existing {
		if r.StudentID == student.ID {
			return nil, ErrAlreadyReviewed
		}
	}

	review := &models.Review{
		ID:          security.NewID(),
		CourseID:    courseID,
		StudentID:   student.ID,
		StudentName: student.Name,
		Rating:      rating,
		Comment:     strings.TrimSpace(comment),
		CreatedAt:   s.now(),
	}
	if err := s.reviewRepo.SaveReview(review); err != nil {
		return nil, err
	}

	course.AddRating(rating)
	if err := s.courseRepo.SaveCourse(course); err != nil {
		return nil, fmt.Errorf("failed to update course rating: %w", err)
	}

	s.logger.Info("Review submitted",
		zap.String("course_id", courseID),
		zap.String("user_id", student.ID),
		zap.Int("rating", rating),
	)
	return review, nil
}

// Reviews lists the reviews of courseID
func (s *ReviewService) Reviews(courseID string) ([]models.Review, error) {
	return s.reviewRepo.GetReviews(courseID)
}
