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

func TestApplicationCreate_StartsPending(t *testing.T) {
	mockApps := new(MockApplicationRepository)
	mockCandidates := new(MockCandidateRepository)
	service := NewApplicationService(mockApps, mockCandidates)

	candidateID := uuid.New()
	jobID := uuid.New()

	mockCandidates.On("GetByID", mock.Anything, candidateID).Return(&models.Candidate{}, nil)
	mockApps.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Application) bool {
		return a.Status == models.ApplicationStatusPending &&
			a.JobID == jobID &&
			a.CandidateID == candidateID
	})).Return(&models.Application{Status: models.ApplicationStatusPending}, nil)

	created, err := service.Create(context.Background(), &dto.CreateApplicationRequest{
		JobID:       jobID,
		CandidateID: candidateID,
		AppliedDate: "2024-06-01",
		Resume:      "resume.pdf",
		CoverLetter: "cover.pdf",
		Experience:  "5 years",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, created.Status)
	mockApps.AssertExpectations(t)
}

func TestApplicationCreate_UnknownCandidate(t *testing.T) {
	mockApps := new(MockApplicationRepository)
	mockCandidates := new(MockCandidateRepository)
	service := NewApplicationService(mockApps, mockCandidates)

	candidateID := uuid.New()
	mockCandidates.On("GetByID", mock.Anything, candidateID).Return(nil, storage.ErrNotFound)

	_, err := service.Create(context.Background(), &dto.CreateApplicationRequest{
		JobID:       uuid.New(),
		CandidateID: candidateID,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	mockApps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApplicationCreate_UnknownJob(t *testing.T) {
	mockApps := new(MockApplicationRepository)
	mockCandidates := new(MockCandidateRepository)
	service := NewApplicationService(mockApps, mockCandidates)

	candidateID := uuid.New()
	mockCandidates.On("GetByID", mock.Anything, candidateID).Return(&models.Candidate{}, nil)
	mockApps.On("Create", mock.Anything, mock.Anything).Return(nil, storage.ErrNotFound)

	_, err := service.Create(context.Background(), &dto.CreateApplicationRequest{
		JobID:       uuid.New(),
		CandidateID: candidateID,
	})

	assert.ErrorIs(t, err, ErrNotFound)
}
