package repository

import (
	"edumarket/internal/storage"
)

// Store groups the repositories that share one storage backend
type Store struct {
	backend storage.Backend

	Users    *UserRepository
	Courses  *CourseRepository
	Chunks   *ChunkRepository
	Reviews  *ReviewRepository
	Badges   *BadgeRepository
	Progress *ProgressRepository
	Sessions *SessionRepository
}

// NewStore creates the repositories over backend
func NewStore(backend storage.Backend) *Store {
	return &Store{
		backend:  backend,
		Users:    NewUserRepository(backend),
		Courses:  NewCourseRepository(backend),
		Chunks:   NewChunkRepository(backend),
		Reviews:  NewReviewRepository(backend),
		Badges:   NewBadgeRepository(backend),
		Progress: NewProgressRepository(backend),
		Sessions: NewSessionRepository(backend),
	}
}

// Backend returns the underlying storage medium
func (s *Store) Backend() storage.Backend {
	return s.backend
}

// Close closes the underlying storage medium
func (s *Store) Close() error {
	return s.backend.Close()
}
