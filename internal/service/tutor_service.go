package service

import (
	"context"
	"slices"

	"edumarket/internal/models"
	"edumarket/internal/repository"

	"go.uber.org/zap"
)

// TutorSubjects are the subjects a tutor can declare
var TutorSubjects = []string{"Math", "Physics", "Chemistry", "Biology"}

var assessmentQuestions = []models.AssessmentQuestion{
	{
		ID:       1,
		Question: "What is the derivative of x²?",
		Options:  []string{"2x", "x", "2", "x²"},
		Correct:  0,
	},
	{
		ID:       2,
		Question: "What is Newton's second law of motion?",
		Options:  []string{"F = ma", "E = mc²", "v = u + at", "P = mv"},
		Correct:  0,
	},
	{
		ID:       3,
		Question: "What is the chemical formula for water?",
		Options:  []string{"H₂O₂", "H₂O", "HO", "H₃O"},
		Correct:  1,
	},
	{
		ID:       4,
		Question: "Which organelle is known as the powerhouse of the cell?",
		Options:  []string{"Nucleus", "Ribosome", "Mitochondria", "Golgi apparatus"},
		Correct:  2,
	},
	{
		ID:       5,
		Question: "What is the quadratic formula?",
		Options: []string{
			"x = -b ± √(b²-4ac)/2a",
			"x = b ± √(b²+4ac)/2a",
			"x = -b ± √(b²+4ac)/2a",
			"x = b ± √(b²-4ac)/2a",
		},
		Correct: 0,
	},
}

// TutorDashboard summarizes a tutor's courses
type TutorDashboard struct {
	Tutor         *models.User
	Courses       []models.Course
	TotalStudents int
}

// TutorService handles tutor qualification and profile
type TutorService struct {
	userRepo   *repository.UserRepository
	courseRepo *repository.CourseRepository
	auth       *AuthService
	emails     *EmailService
	logger     *zap.Logger
}

// NewTutorService creates a new tutor service. emails may be nil.
func NewTutorService(userRepo *repository.UserRepository, courseRepo *repository.CourseRepository, auth *AuthService, emails *EmailService, logger *zap.Logger) *TutorService {
	return &TutorService{
		userRepo:   userRepo,
		courseRepo: courseRepo,
		auth:       auth,
		emails:     emails,
		logger:     logger,
	}
}

// Questions returns a copy of the qualifying quiz
func (s *TutorService) Questions() []models.AssessmentQuestion {
	questions := make([]models.AssessmentQuestion, len(assessmentQuestions))
	for i, q := range assessmentQuestions {
		q.Options = slices.Clone(q.Options)
		questions[i] = q
	}
	return questions
}

// ScoreAssessment grades answers, one option index per question in order
func ScoreAssessment(answers []int) (*models.AssessmentResult, error) {
	if len(answers) != len(assessmentQuestions) {
		return nil, ErrIncompleteAssessment
	}
	correct := 0
	for i, q := range assessmentQuestions {
		if answers[i] == q.Correct {
			correct++
		}
	}
	total := len(assessmentQuestions)
	score := float64(correct) * 10 / float64(total)
	return &models.AssessmentResult{
		Correct: correct,
		Total:   total,
		Score:   score,
		Passed:  score >= models.PassingScore,
	}, nil
}

// SubmitAssessment grades the tutor's quiz answers and records the score.
// A passing score approves the tutor; approval is never revoked by a later attempt.
func (s *TutorService) SubmitAssessment(ctx context.Context, sess *Session, answers []int) (*models.AssessmentResult, error) {
	tutor, err := requireTutor(sess)
	if err != nil {
		return nil, err
	}
	result, err := ScoreAssessment(answers)
	if err != nil {
		return nil, err
	}
	if err := s.recordScore(ctx, sess, tutor, result.Score, result.Passed); err != nil {
		return nil, err
	}
	return result, nil
}

// SubmitSubjectAssessment grades a subject interview and records the final score
// like SubmitAssessment. Passing also adds the subject to the tutor's subjects.
func (s *TutorService) SubmitSubjectAssessment(ctx context.Context, sess *Session, subject string, knowledge, personality []string) (*models.SubjectAssessmentResult, error) {
	tutor, err := requireTutor(sess)
	if err != nil {
		return nil, err
	}
	result, err := ScoreSubjectAssessment(subject, knowledge, personality)
	if err != nil {
		return nil, err
	}
	if result.Passed && !slices.Contains(tutor.Subjects, result.Subject) {
		tutor.Subjects = append(tutor.Subjects, result.Subject)
	}
	if err := s.recordScore(ctx, sess, tutor, result.Score, result.Passed); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *TutorService) recordScore(ctx context.Context, sess *Session, tutor *models.User, score float64, passed bool) error {
	newlyApproved := passed && !tutor.IsApproved
	tutor.AccessScore = score
	if passed {
		tutor.IsApproved = true
	}
	if err := s.auth.SaveProfile(sess, tutor); err != nil {
		return err
	}

	s.logger.Info("Tutor assessment submitted",
		zap.String("user_id", tutor.ID),
		zap.Float64("score", score),
		zap.Bool("passed", passed),
	)

	if newlyApproved && s.emails != nil {
		if err := s.emails.SendTutorApprovedEmail(ctx, tutor.Email, tutor.Name, score); err != nil {
			s.logger.Warn("Failed to send approval email", zap.String("user_id", tutor.ID), zap.Error(err))
		}
	}
	return nil
}

// ToggleSubject adds subject to the tutor's subjects, or removes it when present
func (s *TutorService) ToggleSubject(sess *Session, subject string) ([]string, error) {
	tutor, err := requireTutor(sess)
	if err != nil {
		return nil, err
	}
	subject, ok := NormalizeSubject(subject)
	if !ok {
		return nil, ErrUnknownSubject
	}

	if idx := slices.Index(tutor.Subjects, subject); idx >= 0 {
		tutor.Subjects = slices.Delete(tutor.Subjects, idx, idx+1)
	} else {
		tutor.Subjects = append(tutor.Subjects, subject)
	}
	if err := s.auth.SaveProfile(sess, tutor); err != nil {
		return nil, err
	}
	return tutor.Subjects, nil
}

// Dashboard lists the tutor's courses and how many students are enrolled in them
func (s *TutorService) Dashboard(sess *Session) (*TutorDashboard, error) {
	tutor, err := requireTutor(sess)
	if err != nil {
		return nil, err
	}

	courses, err := s.courseRepo.GetCoursesByTutor(tutor.ID)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.GetAllUsers()
	if err != nil {
		return nil, err
	}

	students := 0
	for i := range users {
		for _, c := range courses {
			if users[i].IsEnrolled(c.ID) {
				students++
				break
			}
		}
	}
	return &TutorDashboard{Tutor: tutor, Courses: courses, TotalStudents: students}, nil
}
