package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/store"
	"github.com/MKhiriev/go-recipe-share/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{userRepository: userRepository, logger: logger}
}

func (s *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.FindAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching users: %w", err)
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error fetching user: %w", err)
	}
	return user, nil
}

// UpdateUserRole rejects roles outside the closed set with ErrInvalidRole
// before touching the store.
func (s *userService) UpdateUserRole(ctx context.Context, userID int64, role models.Role) (models.User, error) {
	if !role.IsValid() {
		return models.User{}, ErrInvalidRole
	}

	user, err := s.userRepository.UpdateUserRole(ctx, userID, role)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("role update failed")
		return models.User{}, fmt.Errorf("error updating user role: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", userID).Str("role", string(role)).Msg("user role changed")
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
