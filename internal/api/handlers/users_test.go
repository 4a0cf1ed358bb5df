package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hr-dashboard/internal/api/middleware"
	"hr-dashboard/internal/auth"
	"hr-dashboard/internal/models"
	"hr-dashboard/internal/services"
	"hr-dashboard/internal/transport/dto"
)

const testSecret = "test-secret"

// MockUserService is a mock type for the services.UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	args := m.Called(ctx, callerID, id)
	return args.Error(0)
}

var _ services.UserService = (*MockUserService)(nil)

func setupUserRouter(service services.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewUserHandler(service, validator.New())
	router := gin.New()
	authed := router.Group("/api/users", middleware.JWTAuthMiddleware(testSecret))
	authed.GET("", handler.GetUsers)
	authed.GET("/:id", handler.GetUserByID)
	authed.DELETE("/:id", handler.DeleteUser)
	return router
}

func authedRequest(t *testing.T, method, path string, user *models.User) *http.Request {
	t.Helper()
	token, err := auth.NewToken(testSecret, time.Hour, user)
	assert.NoError(t, err)
	req, _ := http.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestGetUsers(t *testing.T) {
	mockService := new(MockUserService)
	mockService.On("GetAll", mock.Anything).Return([]models.User{
		{Username: "ada"},
		{Username: "grace"},
	}, nil)
	router := setupUserRouter(mockService)

	w := httptest.NewRecorder()
	req := authedRequest(t, http.MethodGet, "/api/users", &models.User{Role: models.RoleAdmin})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada")
	assert.Contains(t, w.Body.String(), "grace")
}

func TestGetUserByID_NotFound(t *testing.T) {
	mockService := new(MockUserService)
	id := uuid.New()
	mockService.On("GetByID", mock.Anything, id).Return(nil, services.ErrNotFound)
	router := setupUserRouter(mockService)

	w := httptest.NewRecorder()
	req := authedRequest(t, http.MethodGet, "/api/users/"+id.String(), &models.User{Role: models.RoleAdmin})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUserByID_InvalidID(t *testing.T) {
	mockService := new(MockUserService)
	router := setupUserRouter(mockService)

	w := httptest.NewRecorder()
	req := authedRequest(t, http.MethodGet, "/api/users/not-a-uuid", &models.User{Role: models.RoleAdmin})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestDeleteUser_SelfDeletionRejected(t *testing.T) {
	mockService := new(MockUserService)
	admin := &models.User{Role: models.RoleAdmin}
	admin.ID = uuid.New()
	mockService.On("Delete", mock.Anything, admin.ID, admin.ID).
		Return(services.ErrInvalidOperation)
	router := setupUserRouter(mockService)

	w := httptest.NewRecorder()
	req := authedRequest(t, http.MethodDelete, "/api/users/"+admin.ID.String(), admin)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot delete their own account")
}

func TestDeleteUser_Success(t *testing.T) {
	mockService := new(MockUserService)
	admin := &models.User{Role: models.RoleAdmin}
	admin.ID = uuid.New()
	target := uuid.New()
	mockService.On("Delete", mock.Anything, admin.ID, target).Return(nil)
	router := setupUserRouter(mockService)

	w := httptest.NewRecorder()
	req := authedRequest(t, http.MethodDelete, "/api/users/"+target.String(), admin)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}
