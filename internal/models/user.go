package models

import (
	"slices"
	"time"
)

// Role identifies what a user can do in the marketplace
type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTutor
}

// User represents a student or tutor account.
// Exactly one of StudentProfile and TutorProfile is set, matching Role.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`

	*StudentProfile
	*TutorProfile
}

// StudentProfile holds the student-only fields of a user
type StudentProfile struct {
	EnrolledCourses []string `json:"enrolledCourses"`
	// CompletedChunks is initialized at signup but not maintained;
	// UserProgress is the authoritative completion record.
	CompletedChunks []string `json:"completedChunks"`
	Badges          []string `json:"badges"`
	Streak          int      `json:"streak"`
	// LastActiveOn is the local date (YYYY-MM-DD) of the last learning activity
	LastActiveOn string `json:"lastActiveOn,omitempty"`
}

// TutorProfile holds the tutor-only fields of a user
type TutorProfile struct {
	Subjects    []string `json:"subjects"`
	IsApproved  bool     `json:"isApproved"`
	AccessScore float64  `json:"accessScore"`
}

// NewStudentProfile returns the defaults for a freshly signed up student
func NewStudentProfile() *StudentProfile {
	return &StudentProfile{
		EnrolledCourses: []string{},
		CompletedChunks: []string{},
		Badges:          []string{},
		Streak:          0,
	}
}

// NewTutorProfile returns the defaults for a freshly signed up tutor
func NewTutorProfile() *TutorProfile {
	return &TutorProfile{
		Subjects:    []string{},
		IsApproved:  false,
		AccessScore: 0,
	}
}

// IsStudent reports whether the user has the student role
func (u *User) IsStudent() bool {
	return u != nil && u.Role == RoleStudent
}

// IsTutor reports whether the user has the tutor role
func (u *User) IsTutor() bool {
	return u != nil && u.Role == RoleTutor
}

// IsApprovedTutor reports whether the user is a tutor who passed the assessment
func (u *User) IsApprovedTutor() bool {
	return u.IsTutor() && u.TutorProfile != nil && u.TutorProfile.IsApproved
}

// IsEnrolled reports whether a student is enrolled in courseID
func (u *User) IsEnrolled(courseID string) bool {
	if u == nil || u.StudentProfile == nil {
		return false
	}
	return slices.Contains(u.StudentProfile.EnrolledCourses, courseID)
}

// HasBadge reports whether a student has earned badgeID
func (u *User) HasBadge(badgeID string) bool {
	if u == nil || u.StudentProfile == nil {
		return false
	}
	return slices.Contains(u.StudentProfile.Badges, badgeID)
}

// Clone returns a deep copy of the user
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.StudentProfile != nil {
		sp := *u.StudentProfile
		sp.EnrolledCourses = slices.Clone(sp.EnrolledCourses)
		sp.CompletedChunks = slices.Clone(sp.CompletedChunks)
		sp.Badges = slices.Clone(sp.Badges)
		c.StudentProfile = &sp
	}
	if u.TutorProfile != nil {
		tp := *u.TutorProfile
		tp.Subjects = slices.Clone(tp.Subjects)
		c.TutorProfile = &tp
	}
	return &c
}
