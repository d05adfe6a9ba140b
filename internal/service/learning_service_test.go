package service

import (
	"testing"
	"time"

	"edumarket/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseChunk(t *testing.T) {
	env := newSeededEnv(t)
	sess := env.signup(t, "s@x.com", models.RoleStudent)

	result, err := env.learning.PurchaseChunk(sess, "1-2")
	require.NoError(t, err)
	assert.Equal(t, 20.0, result.Price)
	assert.Equal(t, "1", result.Course.ID)
	assert.True(t, sess.User().IsEnrolled("1"))

	stored, err := env.store.Users.GetUserByID(sess.User().ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, stored.EnrolledCourses)

	progress, err := env.store.Progress.GetProgress(sess.User().ID, "1")
	require.NoError(t, err)
	require.NotNil(t, progress)
	assert.Empty(t, progress.CompletedChunks)

	t.Run("owned course is free", func(t *testing.T) {
		again, err := env.learning.PurchaseChunk(sess, "1-3")
		require.NoError(t, err)
		assert.Zero(t, again.Price)
		assert.Equal(t, []string{"1"}, sess.User().EnrolledCourses)
	})
}

func TestPurchaseChunkErrors(t *testing.T) {
	env := newSeededEnv(t)
	student := env.signup(t, "s@x.com", models.RoleStudent)
	tutor := env.signup(t, "t@x.com", models.RoleTutor)

	_, err := env.learning.PurchaseChunk(&Session{}, "1-1")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = env.learning.PurchaseChunk(tutor, "1-1")
	assert.ErrorIs(t, err, ErrNotStudent)

	_, err = env.learning.PurchaseChunk(student, "9-9")
	assert.ErrorIs(t, err, ErrChunkNotFound)

	require.NoError(t, env.store.Chunks.SaveChunk(&models.Chunk{ID: "orphan-1", CourseID: "orphan", Order: 1}))
	_, err = env.learning.PurchaseChunk(student, "orphan-1")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCompleteChunk(t *testing.T) {
	env := newSeededEnv(t)
	sess := env.signup(t, "s@x.com", models.RoleStudent)
	env.learning.now = func() time.Time { return time.Date(2025, 5, 1, 9, 0, 0, 0, time.Local) }

	_, err := env.learning.CompleteChunk(sess, "1-1")
	assert.ErrorIs(t, err, ErrNotEnrolled)

	_, err = env.learning.PurchaseChunk(sess, "1-1")
	require.NoError(t, err)

	result, err := env.learning.CompleteChunk(sess, "1-1")
	require.NoError(t, err)
	assert.Equal(t, 25.0, result.Progress.CompletionPercentage)
	assert.Equal(t, 1, result.Streak)
	require.Len(t, result.NewBadges, 1)
	assert.Equal(t, models.RequirementFirstChunk, result.NewBadges[0].Requirement)
	assert.True(t, sess.User().HasBadge(result.NewBadges[0].ID))

	// completing twice changes nothing
	result, err = env.learning.CompleteChunk(sess, "1-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1-1"}, result.Progress.CompletedChunks)
	assert.Empty(t, result.NewBadges)

	for _, id := range []string{"1-2", "1-3", "1-4"} {
		result, err = env.learning.CompleteChunk(sess, id)
		require.NoError(t, err)
	}
	assert.Equal(t, 100.0, result.Progress.CompletionPercentage)
	require.Len(t, result.NewBadges, 1)
	assert.Equal(t, models.RequirementCompleteCourse, result.NewBadges[0].Requirement)

	// the user record is not the completion record
	assert.Empty(t, sess.User().CompletedChunks)
}

func TestStreak(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 5, d, 12, 0, 0, 0, time.Local) }

	tests := []struct {
		name       string
		lastActive string
		streak     int
		now        time.Time
		want       int
	}{
		{name: "first activity", now: day(10), want: 1},
		{name: "same day", lastActive: "2025-05-10", streak: 3, now: day(10), want: 3},
		{name: "next day", lastActive: "2025-05-09", streak: 3, now: day(10), want: 4},
		{name: "gap resets", lastActive: "2025-05-07", streak: 3, now: day(10), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &models.StudentProfile{LastActiveOn: tt.lastActive, Streak: tt.streak}
			updateStreak(profile, tt.now)
			assert.Equal(t, tt.want, profile.Streak)
			assert.Equal(t, tt.now.Format(dateLayout), profile.LastActiveOn)
		})
	}
}

func TestStreakBadgeAfterSevenDays(t *testing.T) {
	env := newSeededEnv(t)
	sess := env.signup(t, "s@x.com", models.RoleStudent)
	_, err := env.learning.PurchaseChunk(sess, "2-1")
	require.NoError(t, err)

	var earned []string
	for d := 1; d <= 7; d++ {
		env.learning.now = func() time.Time { return time.Date(2025, 6, d, 18, 0, 0, 0, time.Local) }
		result, err := env.learning.CompleteChunk(sess, "2-1")
		require.NoError(t, err)
		for _, b := range result.NewBadges {
			earned = append(earned, b.Requirement)
		}
	}
	assert.Equal(t, 7, sess.User().Streak)
	assert.Contains(t, earned, models.RequirementStreak7Days)
}

func TestCourseProgress(t *testing.T) {
	env := newSeededEnv(t)
	sess := env.signup(t, "s@x.com", models.RoleStudent)

	progress, err := env.learning.CourseProgress(sess, "2")
	require.NoError(t, err)
	assert.Zero(t, progress.CompletionPercentage)
	assert.Equal(t, []string{}, progress.CompletedChunks)
}

func TestStudentDashboard(t *testing.T) {
	env := newSeededEnv(t)
	sess := env.signup(t, "s@x.com", models.RoleStudent)
	_, err := env.learning.PurchaseChunk(sess, "2-1")
	require.NoError(t, err)
	_, err = env.learning.CompleteChunk(sess, "2-2")
	require.NoError(t, err)

	dash, err := env.learning.Dashboard(sess)
	require.NoError(t, err)
	require.Len(t, dash.Courses, 1)
	assert.Equal(t, "2", dash.Courses[0].Course.ID)
	assert.Equal(t, 25.0, dash.Courses[0].Progress.CompletionPercentage)
	require.Len(t, dash.Badges, 4)
	assert.True(t, dash.Badges[0].Earned)
	assert.False(t, dash.Badges[1].Earned)
	assert.Equal(t, 1, dash.Streak)
}
