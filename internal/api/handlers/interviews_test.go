package handlers

import (
	"bytes"
	"context"
	"encoding/json"
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

// MockInterviewService is a mock type for the services.InterviewService interface
type MockInterviewService struct {
	mock.Mock
}

func (m *MockInterviewService) List(ctx context.Context, filter *dto.InterviewListFilter) ([]models.Interview, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Interview), args.Error(1)
}

func (m *MockInterviewService) GetByID(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewService) Create(ctx context.Context, req *dto.CreateInterviewRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ services.InterviewService = (*MockInterviewService)(nil)

func setupInterviewRouter(service services.InterviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewInterviewHandler(service, validator.New())
	router := gin.New()
	authed := router.Group("/api/interviews", middleware.JWTAuthMiddleware(testSecret))
	authed.POST("", handler.CreateInterview)
	authed.PUT("/:id", handler.UpdateInterview)
	return router
}

func authedJSONRequest(t *testing.T, method, path string, body any, user *models.User) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)
	token, err := auth.NewToken(testSecret, time.Hour, user)
	assert.NoError(t, err)
	req, _ := http.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func validInterviewBody() map[string]any {
	return map[string]any{
		"candidateId": uuid.New().String(),
		"jobId":       uuid.New().String(),
		"date":        "2026-08-31",
		"type":        "technical",
		"interviewer": uuid.New().String(),
	}
}

func TestCreateInterview_AcceptsDateOnly(t *testing.T) {
	mockService := new(MockInterviewService)
	mockService.On("Create", mock.Anything, mock.Anything).
		Return(&models.Interview{Date: "2026-08-31"}, nil)
	router := setupInterviewRouter(mockService)

	w := httptest.NewRecorder()
	req := authedJSONRequest(t, http.MethodPost, "/api/interviews", validInterviewBody(),
		&models.User{Role: models.RoleHRStaff})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

// A timestamped date would sort past the date-only bounds of the weekly
// window, so it must be rejected before it reaches the store.
func TestCreateInterview_RejectsTimestampedDate(t *testing.T) {
	mockService := new(MockInterviewService)
	router := setupInterviewRouter(mockService)

	body := validInterviewBody()
	body["date"] = "2026-08-31T10:00"

	w := httptest.NewRecorder()
	req := authedJSONRequest(t, http.MethodPost, "/api/interviews", body,
		&models.User{Role: models.RoleHRStaff})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateInterview_RejectsTimestampedDate(t *testing.T) {
	mockService := new(MockInterviewService)
	router := setupInterviewRouter(mockService)

	w := httptest.NewRecorder()
	req := authedJSONRequest(t, http.MethodPut, "/api/interviews/"+uuid.New().String(),
		map[string]any{"date": "2026-08-31T10:00"},
		&models.User{Role: models.RoleHRStaff})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
	mockService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
