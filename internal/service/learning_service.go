package service

import (
	"fmt"
	"time"

	"edumarket/internal/models"
	"edumarket/internal/repository"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// PurchaseResult describes a chunk purchase
type PurchaseResult struct {
	Chunk  models.Chunk
	Course models.Course
	// Price is what the student was charged; zero when the course was already owned
	Price     float64
	NewBadges []models.Badge
}

// CompletionResult describes a completed chunk
type CompletionResult struct {
	Progress  models.UserProgress
	Streak    int
	NewBadges []models.Badge
}

// EnrolledCourse pairs a course with the student's progress in it
type EnrolledCourse struct {
	Course   models.Course
	Progress models.UserProgress
}

// EarnedBadge is a catalogue badge with whether the student holds it
type EarnedBadge struct {
	Badge  models.Badge
	Earned bool
}

// StudentDashboard summarizes a student's learning
type StudentDashboard struct {
	Student *models.User
	Courses []EnrolledCourse
	Badges  []EarnedBadge
	Streak  int
}

// LearningService handles purchases, completion and progress of students
type LearningService struct {
	courseRepo   *repository.CourseRepository
	chunkRepo    *repository.ChunkRepository
	progressRepo *repository.ProgressRepository
	auth         *AuthService
	badges       *BadgeService
	logger       *zap.Logger
	now          func() time.Time
}

// NewLearningService creates a new learning service
func NewLearningService(
	courseRepo *repository.CourseRepository,
	chunkRepo *repository.ChunkRepository,
	progressRepo *repository.ProgressRepository,
	auth *AuthService,
	badges *BadgeService,
	logger *zap.Logger,
) *LearningService {
	return &LearningService{
		courseRepo:   courseRepo,
		chunkRepo:    chunkRepo,
		progressRepo: progressRepo,
		auth:         auth,
		badges:       badges,
		logger:       logger,
		now:          time.Now,
	}
}

// PurchaseChunk enrolls the student in the chunk's course.
// Enrollment unlocks every chunk of the course; buying into an owned course is free.
func (s *LearningService) PurchaseChunk(sess *Session, chunkID string) (*PurchaseResult, error) {
	student, err := requireStudent(sess)
	if err != nil {
		return nil, err
	}
	chunk, course, err := s.loadChunk(chunkID)
	if err != nil {
		return nil, err
	}

	result := &PurchaseResult{Chunk: *chunk, Course: *course}
	if student.IsEnrolled(course.ID) {
		return result, nil
	}

	now := s.now()
	student.EnrolledCourses = append(student.EnrolledCourses, course.ID)
	result.Price = chunk.Price

	existing, err := s.progressRepo.GetProgress(student.ID, course.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		progress := &models.UserProgress{
			UserID:          student.ID,
			CourseID:        course.ID,
			CompletedChunks: []string{},
			LastAccessed:    now,
		}
		if err := s.progressRepo.SaveUserProgress(progress); err != nil {
			return nil, err
		}
	}

	all, err := s.progressRepo.GetUserProgress(student.ID)
	if err != nil {
		return nil, err
	}
	if result.NewBadges, err = s.badges.Evaluate(student, all); err != nil {
		return nil, err
	}
	if err := s.auth.SaveProfile(sess, student); err != nil {
		return nil, fmt.Errorf("failed to save enrollment: %w", err)
	}

	s.logger.Info("Chunk purchased",
		zap.String("user_id", student.ID),
		zap.String("course_id", course.ID),
		zap.String("chunk_id", chunk.ID),
		zap.Float64("price", chunk.Price),
	)
	return result, nil
}

// CompleteChunk records the chunk as done, updates the streak and awards badges
func (s *LearningService) CompleteChunk(sess *Session, chunkID string) (*CompletionResult, error) {
	student, err := requireStudent(sess)
	if err != nil {
		return nil, err
	}
	chunk, course, err := s.loadChunk(chunkID)
	if err != nil {
		return nil, err
	}
	if !student.IsEnrolled(course.ID) {
		return nil, ErrNotEnrolled
	}

	chunks, err := s.chunkRepo.GetChunks(course.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	progress, err := s.progressRepo.GetProgress(student.ID, course.ID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = &models.UserProgress{UserID: student.ID, CourseID: course.ID, CompletedChunks: []string{}}
	}
	progress.MarkCompleted(chunk.ID, len(chunks), now)
	if err := s.progressRepo.SaveUserProgress(progress); err != nil {
		return nil, err
	}

	updateStreak(student.StudentProfile, now)

	all, err := s.progressRepo.GetUserProgress(student.ID)
	if err != nil {
		return nil, err
	}
	awarded, err := s.badges.Evaluate(student, all)
	if err != nil {
		return nil, err
	}
	if err := s.auth.SaveProfile(sess, student); err != nil {
		return nil, fmt.Errorf("failed to save progress: %w", err)
	}

	s.logger.Info("Chunk completed",
		zap.String("user_id", student.ID),
		zap.String("chunk_id", chunk.ID),
		zap.Float64("completion", progress.CompletionPercentage),
	)
	return &CompletionResult{Progress: *progress, Streak: student.Streak, NewBadges: awarded}, nil
}

// CourseProgress returns the student's progress in courseID; an untouched course has zero progress
func (s *LearningService) CourseProgress(sess *Session, courseID string) (*models.UserProgress, error) {
	student, err := requireStudent(sess)
	if err != nil {
		return nil, err
	}
	progress, err := s.progressRepo.GetProgress(student.ID, courseID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = &models.UserProgress{UserID: student.ID, CourseID: courseID, CompletedChunks: []string{}}
	}
	return progress, nil
}

// Dashboard gathers the student's courses, progress and badges
func (s *LearningService) Dashboard(sess *Session) (*StudentDashboard, error) {
	student, err := requireStudent(sess)
	if err != nil {
		return nil, err
	}

	dash := &StudentDashboard{Student: student, Streak: student.Streak}
	for _, courseID := range student.EnrolledCourses {
		course, err := s.courseRepo.GetCourseByID(courseID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			s.logger.Warn("Enrolled course missing from catalogue", zap.String("course_id", courseID))
			continue
		}
		progress, err := s.CourseProgress(sess, courseID)
		if err != nil {
			return nil, err
		}
		dash.Courses = append(dash.Courses, EnrolledCourse{Course: *course, Progress: *progress})
	}

	catalogue, err := s.badges.Catalogue()
	if err != nil {
		return nil, err
	}
	for _, b := range catalogue {
		dash.Badges = append(dash.Badges, EarnedBadge{Badge: b, Earned: student.HasBadge(b.ID)})
	}
	return dash, nil
}

func (s *LearningService) loadChunk(chunkID string) (*models.Chunk, *models.Course, error) {
	chunk, err := s.chunkRepo.GetChunkByID(chunkID)
	if err != nil {
		return nil, nil, err
	}
	if chunk == nil {
		return nil, nil, ErrChunkNotFound
	}
	course, err := s.courseRepo.GetCourseByID(chunk.CourseID)
	if err != nil {
		return nil, nil, err
	}
	if course == nil {
		return nil, nil, ErrCourseNotFound
	}
	return chunk, course, nil
}

// updateStreak counts consecutive local days with learning activity
func updateStreak(profile *models.StudentProfile, now time.Time) {
	today := now.Format(dateLayout)
	switch profile.LastActiveOn {
	case today:
		return
	case now.AddDate(0, 0, -1).Format(dateLayout):
		profile.Streak++
	default:
		profile.Streak = 1
	}
	profile.LastActiveOn = today
}
