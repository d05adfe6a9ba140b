package models

// Badge requirement keys
const (
	RequirementFirstChunk     = "complete_first_chunk"
	RequirementCompleteCourse = "complete_course"
	RequirementStreak7Days    = "streak_7_days"
	RequirementEnroll5Courses = "enroll_5_courses"
)

// Badge is a static achievement descriptor
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement string `json:"requirement"`
}
