package main

import (
	"context"
	"fmt"

	"edumarket/internal/config"
	"edumarket/internal/repository"
	"edumarket/internal/service"
	"edumarket/internal/storage"

	"go.uber.org/zap"
)

// app wires the store, the services and the restored session of one invocation
type app struct {
	store    *repository.Store
	auth     *service.AuthService
	badges   *service.BadgeService
	courses  *service.CourseService
	learning *service.LearningService
	reviews  *service.ReviewService
	tutors   *service.TutorService
	session  *service.Session
}

func openApp(ctx context.Context, cfg *config.Config, logger *zap.Logger, seed bool) (*app, error) {
	backend, err := storage.Open(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	emails, err := service.NewEmailService(ctx, cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, logger)
	if err != nil {
		logger.Warn("Email service unavailable, continuing without email", zap.Error(err))
		emails = nil
	}

	a, err := newApp(backend, emails, logger, seed)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return a, nil
}

func newApp(backend storage.Backend, emails *service.EmailService, logger *zap.Logger, seed bool) (*app, error) {
	store := repository.NewStore(backend)
	if seed {
		seeded, err := store.Seed(timeNow())
		if err != nil {
			return nil, fmt.Errorf("failed to seed store: %w", err)
		}
		if len(seeded) > 0 {
			logger.Info("Seeded reference data", zap.Strings("keys", seeded))
		}
	}

	auth := service.NewAuthService(store.Users, store.Sessions, emails, logger)
	badges := service.NewBadgeService(store.Badges, logger)
	a := &app{
		store:    store,
		auth:     auth,
		badges:   badges,
		courses:  service.NewCourseService(store.Courses, store.Chunks, store.Reviews, logger),
		learning: service.NewLearningService(store.Courses, store.Chunks, store.Progress, auth, badges, logger),
		reviews:  service.NewReviewService(store.Courses, store.Reviews, logger),
		tutors:   service.NewTutorService(store.Users, store.Courses, auth, emails, logger),
	}

	sess, err := auth.Restore()
	if err != nil {
		return nil, err
	}
	a.session = sess
	return a, nil
}

// Close releases the store
func (a *app) Close() error {
	return a.store.Close()
}
