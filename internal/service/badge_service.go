package service

import (
	"fmt"

	"edumarket/internal/models"
	"edumarket/internal/repository"

	"go.uber.org/zap"
)

// streakBadgeDays and enrollBadgeCourses are the thresholds of the streak and enrollment badges
const (
	streakBadgeDays    = 7
	enrollBadgeCourses = 5
)

// BadgeService awards catalogue badges whose requirement a student meets
type BadgeService struct {
	badgeRepo *repository.BadgeRepository
	logger    *zap.Logger
}

// NewBadgeService creates a new badge service
func NewBadgeService(badgeRepo *repository.BadgeRepository, logger *zap.Logger) *BadgeService {
	return &BadgeService{badgeRepo: badgeRepo, logger: logger}
}

// Catalogue returns every badge
func (s *BadgeService) Catalogue() ([]models.Badge, error) {
	return s.badgeRepo.GetBadges()
}

// Evaluate appends newly earned badge ids to the student's profile and returns those badges.
// It does not persist user.
func (s *BadgeService) Evaluate(user *models.User, progress []models.UserProgress) ([]models.Badge, error) {
	if user == nil || user.StudentProfile == nil {
		return nil, nil
	}

	badges, err := s.badgeRepo.GetBadges()
	if err != nil {
		return nil, fmt.Errorf("failed to load badges: %w", err)
	}

	var awarded []models.Badge
	for _, badge := range badges {
		if user.HasBadge(badge.ID) || !requirementMet(badge.Requirement, user, progress) {
			continue
		}
		user.Badges = append(user.Badges, badge.ID)
		awarded = append(awarded, badge)
		s.logger.Info("Badge awarded", zap.String("user_id", user.ID), zap.String("badge", badge.Name))
	}
	return awarded, nil
}

func requirementMet(requirement string, user *models.User, progress []models.UserProgress) bool {
	switch requirement {
	case models.RequirementFirstChunk:
		for _, p := range progress {
			if len(p.CompletedChunks) > 0 {
				return true
			}
		}
	case models.RequirementCompleteCourse:
		for _, p := range progress {
			if p.IsComplete() {
				return true
			}
		}
	case models.RequirementStreak7Days:
		return user.Streak >= streakBadgeDays
	case models.RequirementEnroll5Courses:
		return len(user.EnrolledCourses) >= enrollBadgeCourses
	}
	return false
}
