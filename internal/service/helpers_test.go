package service

import (
	"context"
	"testing"
	"time"

	"edumarket/internal/models"
	"edumarket/internal/repository"
	"edumarket/internal/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	store    *repository.Store
	emails   *EmailService
	auth     *AuthService
	badges   *BadgeService
	courses  *CourseService
	learning *LearningService
	reviews  *ReviewService
	tutors   *TutorService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	store := repository.NewStore(storage.NewMemoryBackend())
	t.Cleanup(func() { store.Close() })

	emails, err := NewEmailService(context.Background(), "", "", "", "", logger)
	require.NoError(t, err)

	auth := NewAuthService(store.Users, store.Sessions, emails, logger)
	badges := NewBadgeService(store.Badges, logger)
	return &testEnv{
		store:    store,
		emails:   emails,
		auth:     auth,
		badges:   badges,
		courses:  NewCourseService(store.Courses, store.Chunks, store.Reviews, logger),
		learning: NewLearningService(store.Courses, store.Chunks, store.Progress, auth, badges, logger),
		reviews:  NewReviewService(store.Courses, store.Reviews, logger),
		tutors:   NewTutorService(store.Users, store.Courses, auth, emails, logger),
	}
}

func newSeededEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	_, err := env.store.Seed(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return env
}

func (e *testEnv) signup(t *testing.T, email string, role models.Role) *Session {
	t.Helper()
	sess := &Session{}
	ok, err := e.auth.Signup(context.Background(), sess, SignupInput{
		Email:    email,
		Password: "secret",
		Name:     "Test " + string(role),
		Role:     role,
	})
	require.NoError(t, err)
	require.True(t, ok)
	return sess
}

func (e *testEnv) approvedTutor(t *testing.T, email string) *Session {
	t.Helper()
	sess := e.signup(t, email, models.RoleTutor)
	_, err := e.tutors.SubmitAssessment(context.Background(), sess, []int{0, 0, 1, 2, 0})
	require.NoError(t, err)
	require.True(t, sess.User().IsApprovedTutor())
	return sess
}

func (e *testEnv) userCount(t *testing.T) int {
	t.Helper()
	users, err := e.store.Users.GetAllUsers()
	require.NoError(t, err)
	return len(users)
}
