package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hr-dashboard/internal/models"
	"hr-dashboard/internal/storage"
	"hr-dashboard/internal/transport/dto"
)

type userService struct {
	users storage.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(users storage.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.users.GetAll(ctx)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	if req.Role != nil && !models.ValidRole(*req.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, *req.Role)
	}

	user, err := s.users.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("UserService: error updating user %s: %v", id, err)
		return nil, fmt.Errorf("internal error updating user: %w", err)
	}
	return user, nil
}

// Delete removes a user. Self-deletion is rejected with ErrInvalidOperation
// for every caller, admins included.
func (s *userService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if callerID == id {
		return fmt.Errorf("%w: users cannot delete their own account", ErrInvalidOperation)
	}

	err := s.users.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
