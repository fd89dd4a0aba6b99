package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/flowboard/flowboard-api/internal/models"
	"github.com/flowboard/flowboard-api/internal/repository"
	"github.com/flowboard/flowboard-api/internal/sorting"
)

// UserService exposes read-only user lookups.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns every user, ordered by orderBy when given
func (s *UserService) ListUsers(ctx context.Context, orderBy string) ([]models.User, error) {
	order, err := sorting.Parse(orderBy, repository.UserSortFields)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns a single user
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, ErrUserNotFound, "failed to find user")
	}
	return user, nil
}
