package services

import (
	"context"

	"github.com/ParthDhengle/ClipHub/internal/models"
	"github.com/ParthDhengle/ClipHub/internal/repository"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(ctx context.Context, id string) (*models.User, error) {
	return s.users.Get(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, upd *models.UserUpdate) (*models.User, error) {
	return s.users.Update(ctx, id, upd)
}

func (s *UserService) Preferences(ctx context.Context, id string) ([]string, error) {
	u, err := s.users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Preferences == nil {
		return []string{}, nil
	}
	return u.Preferences, nil
}

// SetPreferences replaces the whole list.
func (s *UserService) SetPreferences(ctx context.Context, id string, prefs []string) ([]string, error) {
	u, err := s.users.SetPreferences(ctx, id, prefs)
	if err != nil {
		return nil, err
	}
	return u.Preferences, nil
}
