package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hr-dashboard/internal/models"
	"hr-dashboard/internal/storage"
	"hr-dashboard/internal/transport/dto"
)

func TestUserDelete_RejectsSelfDeletion(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	id := uuid.New()
	err := service.Delete(context.Background(), id, id)

	assert.ErrorIs(t, err, ErrInvalidOperation)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserDelete_AllowsDeletingOtherAccounts(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	target := uuid.New()
	mockRepo.On("Delete", mock.Anything, target).Return(nil)

	err := service.Delete(context.Background(), uuid.New(), target)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserDelete_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	target := uuid.New()
	mockRepo.On("Delete", mock.Anything, target).Return(storage.ErrNotFound)

	err := service.Delete(context.Background(), uuid.New(), target)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserUpdate_RejectsUnknownRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo)

	bad := models.Role("root")
	_, err := service.Update(context.Background(), uuid.New(), &dto.UpdateUserRequest{Role: &bad})

	assert.ErrorIs(t, err, ErrValidation)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
