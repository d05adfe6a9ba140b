package models

import (
	"slices"
	"time"
)

// UserProgress tracks one student's completion of one course.
// It is keyed by (UserID, CourseID).
type UserProgress struct {
	UserID               string    `json:"userId"`
	CourseID             string    `json:"courseId"`
	CompletedChunks      []string  `json:"completedChunks"`
	CompletionPercentage float64   `json:"completionPercentage"`
	LastAccessed         time.Time `json:"lastAccessed"`
}

// CompletionPercentage returns completed/total as a percentage, 0 when total is 0
func CompletionPercentage(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// MarkCompleted records chunkID and recomputes the percentage against totalChunks.
// It returns false when the chunk was already completed.
func (p *UserProgress) MarkCompleted(chunkID string, totalChunks int, now time.Time) bool {
	p.LastAccessed = now
	if slices.Contains(p.CompletedChunks, chunkID) {
		return false
	}
	p.CompletedChunks = append(p.CompletedChunks, chunkID)
	p.CompletionPercentage = CompletionPercentage(len(p.CompletedChunks), totalChunks)
	return true
}

// IsComplete reports whether every chunk of the course is done
func (p *UserProgress) IsComplete() bool {
	return p.CompletionPercentage >= 100
}
