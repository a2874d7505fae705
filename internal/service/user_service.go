package service

import (
	"context"
	"fmt"

	"oncolearn/internal/errs"
	"oncolearn/internal/logger"
	"oncolearn/internal/models"
	"oncolearn/internal/repository"
	"oncolearn/internal/storage"
)

type UserService interface {
	Get(ctx context.Context, userID int64) (*models.Profile, error)
	List(ctx context.Context, actor *models.Profile) ([]*models.Profile, error)
	SetRole(ctx context.Context, actor *models.Profile, userID int64, role models.Role) error
	Delete(ctx context.Context, actor *models.Profile, userID int64) error
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
}

func NewUserService(userRepo repository.UserRepository, store storage.Storage) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  store,
	}
}

func (s *userService) Get(ctx context.Context, userID int64) (*models.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user.Sanitize(), nil
}

func (s *userService) List(ctx context.Context, actor *models.Profile) ([]*models.Profile, error) {
	if !IsAdmin(actor) {
		return nil, errs.ErrUnauthorized
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]*models.Profile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, user.Sanitize())
	}

	return profiles, nil
}

// SetRole is the only role-elevation path in the system.
func (s *userService) SetRole(ctx context.Context, actor *models.Profile, userID int64, role models.Role) error {
	if !IsAdmin(actor) {
		return errs.ErrUnauthorized
	}
	if !role.Valid() {
		return fmt.Errorf("bad role %q: %w", role, errs.ErrValidation)
	}

	return s.userRepo.UpdateRole(ctx, userID, role)
}

// Delete removes the account and its avatar object. The user's uploaded
// content is left in place on purpose: removing a contributor must not
// retroactively erase published material others rely on.
func (s *userService) Delete(ctx context.Context, actor *models.Profile, userID int64) error {
	if !IsAdmin(actor) {
		return errs.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.AvatarURL != "" {
		key, err := s.storage.KeyFromURL(user.AvatarURL)
		if err != nil {
			logger.Log.Warnw("cannot resolve avatar key, leaving object behind", "url", user.AvatarURL, "err", err)
		} else if err := s.storage.Remove(ctx, key); err != nil {
			logger.Log.Warnw("failed to remove avatar object, leaving orphan", "key", key, "err", err)
		}
	}

	return s.userRepo.Delete(ctx, userID)
}
