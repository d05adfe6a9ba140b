package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a student's rating of a course
type Review struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
}
