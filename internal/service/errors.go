package service

import (
	"errors"

	"edumarket/internal/models"
)

var (
	ErrNotAuthenticated     = errors.New("not logged in")
	ErrNotStudent           = errors.New("only students can do this")
	ErrNotTutor             = errors.New("only tutors can do this")
	ErrTutorNotApproved     = errors.New("tutor has not passed the assessment")
	ErrCourseNotFound       = errors.New("course not found")
	ErrChunkNotFound        = errors.New("chunk not found")
	ErrNotEnrolled          = errors.New("student is not enrolled in this course")
	ErrAlreadyReviewed      = errors.New("student has already reviewed this course")
	ErrIncompleteAssessment = errors.New("every assessment question must be answered")
	ErrUnknownSubject       = errors.New("unknown subject")
	ErrShortAnswer          = errors.New("answer is too short")
)

// requireStudent returns a private copy of the session's user when it is a student
func requireStudent(sess *Session) (*models.User, error) {
	user := sess.User()
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	if !user.IsStudent() || user.StudentProfile == nil {
		return nil, ErrNotStudent
	}
	return user.Clone(), nil
}

// requireTutor returns a private copy of the session's user when it is a tutor
func requireTutor(sess *Session) (*models.User, error) {
	user := sess.User()
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	if !user.IsTutor() || user.TutorProfile == nil {
		return nil, ErrNotTutor
	}
	return user.Clone(), nil
}
