package repository

import (
	"fmt"

	"edumarket/internal/models"
	"edumarket/internal/storage"
)

// CourseRepository handles persistence of courses
type CourseRepository struct {
	courses *Collection[models.Course]
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(backend storage.Backend) *CourseRepository {
	return &CourseRepository{
		courses: NewCollection(backend, storage.KeyCourses, func(c models.Course) string { return c.ID }),
	}
}

// GetCourses retrieves all courses in stored order
func (r *CourseRepository) GetCourses() ([]models.Course, error) {
	courses, err := r.courses.List()
	if err != nil {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a course by ID, or nil when absent
func (r *CourseRepository) GetCourseByID(id string) (*models.Course, error) {
	course, err := r.courses.Find(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return course, nil
}

// GetCoursesByTutor retrieves the courses owned by tutorID
func (r *CourseRepository) GetCoursesByTutor(tutorID string) ([]models.Course, error) {
	courses, err := r.courses.FindBy(func(c models.Course) bool { return c.TutorID == tutorID })
	if err != nil {
		return nil, fmt.Errorf("failed to get tutor courses: %w", err)
	}
	return courses, nil
}

// SaveCourse inserts the course or replaces the stored record with the same ID
func (r *CourseRepository) SaveCourse(course *models.Course) error {
	if err := r.courses.Upsert(*course); err != nil {
		return fmt.Errorf("failed to save course: %w", err)
	}
	return nil
}
