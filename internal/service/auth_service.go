package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"edumarket/internal/models"
	"edumarket/internal/repository"
	"edumarket/internal/security"
	"edumarket/internal/validation"

	"go.uber.org/zap"
)

// Session is the authentication state of one client.
// A session without a user is anonymous.
type Session struct {
	user *models.User
}

// User returns the authenticated user, or nil when anonymous
func (s *Session) User() *models.User {
	if s == nil {
		return nil
	}
	return s.user
}

// IsAuthenticated reports whether a user is logged in
func (s *Session) IsAuthenticated() bool {
	return s.User() != nil
}

// SignupInput carries the fields a new account is created from
type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     models.Role
}

// AuthService handles login, signup and the persisted current-user record
type AuthService struct {
	userRepo    *repository.UserRepository
	sessionRepo *repository.SessionRepository
	emails      *EmailService
	logger      *zap.Logger
	now         func() time.Time
}

// NewAuthService creates a new auth service. emails may be nil.
func NewAuthService(userRepo *repository.UserRepository, sessionRepo *repository.SessionRepository, emails *EmailService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		emails:      emails,
		logger:      logger,
		now:         time.Now,
	}
}

// Restore loads the persisted current user. Without one the session is anonymous.
func (s *AuthService) Restore() (*Session, error) {
	user, err := s.sessionRepo.GetCurrentUser()
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	if user != nil {
		s.logger.Debug("Session restored", zap.String("user_id", user.ID))
	}
	return &Session{user: user}, nil
}

// Login authenticates sess with email and password.
// A mismatch returns false and leaves the session untouched.
func (s *AuthService) Login(sess *Session, email, password string) (bool, error) {
	if validation.ValidatePassword(password) != nil {
		s.logger.Debug("Login rejected", zap.String("email", email))
		return false, nil
	}

	candidates, err := s.userRepo.GetUsersByEmail(email)
	if err != nil {
		return false, err
	}

	for i := range candidates {
		user := &candidates[i]
		if !security.CheckPassword(password, user.PasswordHash) {
			continue
		}
		if err := s.authenticate(sess, user); err != nil {
			return false, err
		}
		s.logger.Info("User logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
		return true, nil
	}

	s.logger.Debug("Login rejected", zap.String("email", email))
	return false, nil
}

// Signup creates an account and logs it in.
// It returns false without changing anything when the email is already registered.
func (s *AuthService) Signup(ctx context.Context, sess *Session, input SignupInput) (bool, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)

	if err := validation.ValidateEmail(input.Email); err != nil {
		return false, err
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		return false, err
	}
	if err := validation.ValidateName(input.Name); err != nil {
		return false, err
	}
	if err := validation.ValidateRole(input.Role); err != nil {
		return false, err
	}

	existing, err := s.userRepo.GetUserByEmail(input.Email)
	if err != nil {
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		s.logger.Debug("Signup rejected, email taken", zap.String("email", input.Email))
		return false, nil
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           security.NewID(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         input.Role,
		Name:         input.Name,
		CreatedAt:    s.now(),
	}
	switch input.Role {
	case models.RoleStudent:
		user.StudentProfile = models.NewStudentProfile()
	case models.RoleTutor:
		user.TutorProfile = models.NewTutorProfile()
	}

	if err := s.userRepo.SaveUser(user); err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	if err := s.authenticate(sess, user); err != nil {
		return false, err
	}
	s.logger.Info("User signed up", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))

	if s.emails != nil {
		if err := s.emails.SendWelcomeEmail(ctx, user.Email, user.Name, user.Role); err != nil {
			s.logger.Warn("Failed to send welcome email", zap.String("user_id", user.ID), zap.Error(err))
		}
	}
	return true, nil
}

// Logout makes sess anonymous and clears the persisted current user.
// Logging out an anonymous session is a no-op that still clears the record.
func (s *AuthService) Logout(sess *Session) error {
	if u := sess.User(); u != nil {
		s.logger.Info("User logged out", zap.String("user_id", u.ID))
	}
	if sess != nil {
		sess.user = nil
	}
	if err := s.sessionRepo.ClearCurrentUser(); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

// SaveProfile persists a whole-record change to user.
// When user is the one logged in to sess, the session and current-user record follow.
func (s *AuthService) SaveProfile(sess *Session, user *models.User) error {
	if err := s.userRepo.SaveUser(user); err != nil {
		return err
	}
	if current := sess.User(); current != nil && current.ID == user.ID {
		return s.authenticate(sess, user)
	}
	return nil
}

func (s *AuthService) authenticate(sess *Session, user *models.User) error {
	if err := s.sessionRepo.SetCurrentUser(user); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	sess.user = user.Clone()
	return nil
}
