package repository

import (
	"fmt"
	"time"

	"edumarket/internal/models"
	"edumarket/internal/storage"
)

// Seed writes the reference badges, courses and chunks.
// Each key is written only when it is absent; existing data is never
// overwritten or merged. It returns the keys that were written.
func (s *Store) Seed(now time.Time) ([]string, error) {
	var seeded []string

	if ok, err := seedIfAbsent(s.Badges.badges, DefaultBadges()); err != nil {
		return seeded, err
	} else if ok {
		seeded = append(seeded, storage.KeyBadges)
	}

	if ok, err := seedIfAbsent(s.Courses.courses, DefaultCourses(now)); err != nil {
		return seeded, err
	} else if ok {
		seeded = append(seeded, storage.KeyCourses)
	}

	if ok, err := seedIfAbsent(s.Chunks.chunks, DefaultChunks()); err != nil {
		return seeded, err
	} else if ok {
		seeded = append(seeded, storage.KeyChunks)
	}

	return seeded, nil
}

func seedIfAbsent[T any](c *Collection[T], items []T) (bool, error) {
	exists, err := c.Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", c.Key(), err)
	}
	if exists {
		return false, nil
	}
	if err := c.ReplaceAll(items); err != nil {
		return false, fmt.Errorf("failed to seed %s: %w", c.Key(), err)
	}
	return true, nil
}

// DefaultBadges is the static badge catalogue
func DefaultBadges() []models.Badge {
	return []models.Badge{
		{ID: "1", Name: "First Steps", Description: "Complete your first course chunk", Icon: "🎯", Requirement: models.RequirementFirstChunk},
		{ID: "2", Name: "Course Conqueror", Description: "Complete an entire course", Icon: "🏆", Requirement: models.RequirementCompleteCourse},
		{ID: "3", Name: "Streak Master", Description: "Maintain a 7-day learning streak", Icon: "🔥", Requirement: models.RequirementStreak7Days},
		{ID: "4", Name: "Knowledge Seeker", Description: "Enroll in 5 different courses", Icon: "📚", Requirement: models.RequirementEnroll5Courses},
	}
}

// DefaultCourses is the demo course catalogue
func DefaultCourses(now time.Time) []models.Course {
	return []models.Course{
		{
			ID:               "1",
			Title:            "Introduction to Calculus",
			Description:      "Master the fundamentals of calculus with step-by-step guidance",
			TutorID:          "tutor1",
			TutorName:        "Dr. Sarah Johnson",
			Subject:          "Math",
			TotalPrice:       120,
			NumberOfSections: 6,
			PricePerSection:  20,
			AverageRating:    4.8,
			TotalReviews:     156,
			CreatedAt:        now,
		},
		{
			ID:               "2",
			Title:            "Physics Fundamentals",
			Description:      "Explore the basic principles of physics through interactive lessons",
			TutorID:          "tutor2",
			TutorName:        "Prof. Michael Chen",
			Subject:          "Physics",
			TotalPrice:       100,
			NumberOfSections: 5,
			PricePerSection:  20,
			AverageRating:    4.6,
			TotalReviews:     89,
			CreatedAt:        now,
		},
		{
			ID:               "3",
			Title:            "Organic Chemistry Basics",
			Description:      "Understand organic chemistry concepts with practical examples",
			TutorID:          "tutor3",
			TutorName:        "Dr. Emily Rodriguez",
			Subject:          "Chemistry",
			TotalPrice:       140,
			NumberOfSections: 7,
			PricePerSection:  20,
			AverageRating:    4.9,
			TotalReviews:     203,
			CreatedAt:        now,
		},
	}
}

// DefaultChunks are the sections of the demo calculus and physics courses
func DefaultChunks() []models.Chunk {
	return []models.Chunk{
		{ID: "1-1", CourseID: "1", Title: "Limits and Continuity", Content: "Introduction to limits...", Order: 1, Price: 20},
		{ID: "1-2", CourseID: "1", Title: "Derivatives", Content: "Understanding derivatives...", Order: 2, Price: 20},
		{ID: "1-3", CourseID: "1", Title: "Applications of Derivatives", Content: "Real-world applications...", Order: 3, Price: 20},
		{ID: "1-4", CourseID: "1", Title: "Integrals", Content: "Introduction to integration...", Order: 4, Price: 20},
		{ID: "2-1", CourseID: "2", Title: "Motion and Forces", Content: "Newton's laws...", Order: 1, Price: 20},
		{ID: "2-2", CourseID: "2", Title: "Energy and Work", Content: "Conservation of energy...", Order: 2, Price: 20},
		{ID: "2-3", CourseID: "2", Title: "Waves and Sound", Content: "Wave properties...", Order: 3, Price: 20},
		{ID: "2-4", CourseID: "2", Title: "Electricity and Magnetism", Content: "Electric fields...", Order: 4, Price: 20},
	}
}
