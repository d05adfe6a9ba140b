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

const (
	defaultSectionContent = "Content coming soon..."
	// AllSubjects matches every subject in Search
	AllSubjects = "all"
)

// SectionInput is the optional title and content of one section
type SectionInput struct {
	Title   string
	Content string
}

// CourseInput carries the fields a tutor supplies for a new course
type CourseInput struct {
	Title            string
	Description      string
	Subject          string
	TotalPrice       float64
	NumberOfSections int
	PreviewImage     string
	Sections         []SectionInput
}

// CourseDetail is a course with its sections and reviews
type CourseDetail struct {
	Course  models.Course
	Chunks  []models.Chunk
	Reviews []models.Review
}

// CourseService handles the course catalogue
type CourseService struct {
	courseRepo *repository.CourseRepository
	chunkRepo  *repository.ChunkRepository
	reviewRepo *repository.ReviewRepository
	logger     *zap.Logger
	now        func() time.Time
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo *repository.CourseRepository, chunkRepo *repository.ChunkRepository, reviewRepo *repository.ReviewRepository, logger *zap.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		chunkRepo:  chunkRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateCourse publishes a course and its sections for an approved tutor
func (s *CourseService) CreateCourse(sess *Session, input CourseInput) (*models.Course, error) {
	tutor, err := requireTutor(sess)
	if err != nil {
		return nil, err
	}
	if !tutor.IsApproved {
		return nil, ErrTutorNotApproved
	}
	if err := validation.ValidateCourse(input.Title, input.Subject, input.TotalPrice, input.NumberOfSections); err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:               security.NewID(),
		Title:            strings.TrimSpace(input.Title),
		Description:      input.Description,
		TutorID:          tutor.ID,
		TutorName:        tutor.Name,
		Subject:          input.Subject,
		TotalPrice:       input.TotalPrice,
		NumberOfSections: input.NumberOfSections,
		PricePerSection:  models.SectionPrice(input.TotalPrice, input.NumberOfSections),
		PreviewImage:     input.PreviewImage,
		CreatedAt:        s.now(),
	}
	if err := s.courseRepo.SaveCourse(course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	for i := 0; i < course.NumberOfSections; i++ {
		order := i + 1
		chunk := &models.Chunk{
			ID:       models.ChunkID(course.ID, order),
			CourseID: course.ID,
			Title:    fmt.Sprintf("Section %d", order),
			Content:  defaultSectionContent,
			Order:    order,
			Price:    course.PricePerSection,
		}
		if i < len(input.Sections) {
			if t := strings.TrimSpace(input.Sections[i].Title); t != "" {
				chunk.Title = t
			}
			if c := strings.TrimSpace(input.Sections[i].Content); c != "" {
				chunk.Content = c
			}
		}
		if err := s.chunkRepo.SaveChunk(chunk); err != nil {
			return nil, fmt.Errorf("failed to create section %d: %w", order, err)
		}
	}

	s.logger.Info("Course created",
		zap.String("course_id", course.ID),
		zap.String("tutor_id", tutor.ID),
		zap.Int("sections", course.NumberOfSections),
	)
	return course, nil
}

// Search returns courses whose title, description or tutor name contains term,
// limited to subject unless subject is empty or "all"
func (s *CourseService) Search(term, subject string) ([]models.Course, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	anySubject := subject == "" || strings.EqualFold(subject, AllSubjects)

	courses, err := s.courseRepo.GetCourses()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if !anySubject && !strings.EqualFold(c.Subject, subject) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(c.Title), term) &&
			!strings.Contains(strings.ToLower(c.Description), term) &&
			!strings.Contains(strings.ToLower(c.TutorName), term) {
			continue
		}
		matched = append(matched, c)
	}
	return matched, nil
}

// Subjects returns the distinct subjects of the catalogue in first-seen order
func (s *CourseService) Subjects() ([]string, error) {
	courses, err := s.courseRepo.GetCourses()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	subjects := []string{}
	for _, c := range courses {
		if !seen[c.Subject] {
			seen[c.Subject] = true
			subjects = append(subjects, c.Subject)
		}
	}
	return subjects, nil
}

// CoursesByTutor returns the courses owned by tutorID
func (s *CourseService) CoursesByTutor(tutorID string) ([]models.Course, error) {
	return s.courseRepo.GetCoursesByTutor(tutorID)
}

// Detail loads a course with its chunks and reviews
func (s *CourseService) Detail(courseID string) (*CourseDetail, error) {
	course, err := s.courseRepo.GetCourseByID(courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	chunks, err := s.chunkRepo.GetChunks(courseID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.GetReviews(courseID)
	if err != nil {
		return nil, err
	}
	return &CourseDetail{Course: *course, Chunks: chunks, Reviews: reviews}, nil
}
