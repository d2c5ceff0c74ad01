package service

import (
	"context"

	"whisp/internal/models"
	"whisp/internal/repository"
)

type UserService interface {
	GetProfileByName(ctx context.Context, name string) (*models.Profile, error)
	GetProfileByID(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, viewer *models.User, displayName, bio *string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func toProfile(user *models.User) *models.Profile {
	displayName := user.Name
	if user.DisplayName != nil && *user.DisplayName != "" {
		displayName = *user.DisplayName
	}

	return &models.Profile{
		UserID:          user.UserID,
		DisplayName:     displayName,
		AccountUsername: user.Name,
		Bio:             user.Bio,
		Image:           user.Image,
		DateJoined:      user.DateJoined,
		IsVerified:      user.IsVerified,
		IsAdmin:         user.IsAdmin,
	}
}

func (s *userService) GetProfileByName(ctx context.Context, name string) (*models.Profile, error) {
	user, err := s.userRepo.GetUserByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return toProfile(user), nil
}

func (s *userService) GetProfileByID(ctx context.Context, userID string) (*models.Profile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toProfile(user), nil
}

// UpdateProfile writes only the allow-listed fields, whatever else a
// client sent along.
func (s *userService) UpdateProfile(ctx context.Context, viewer *models.User, displayName, bio *string) error {
	return s.userRepo.UpdateProfile(ctx, viewer.UserID, displayName, bio)
}
