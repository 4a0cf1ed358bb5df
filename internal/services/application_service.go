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

type applicationService struct {
	applications storage.ApplicationRepository
	candidates   storage.CandidateRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(applications storage.ApplicationRepository, candidates storage.CandidateRepository) ApplicationService {
	return &applicationService{applications: applications, candidates: candidates}
}

func (s *applicationService) List(ctx context.Context, filter *dto.ApplicationListFilter) ([]models.Application, error) {
	return s.applications.GetAll(ctx, filter)
}

func (s *applicationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	application, err := s.applications.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return application, err
}

// Create validates the candidate reference and persists the application; the
// repository increments the parent job's applications counter atomically in
// the same transaction.
func (s *applicationService) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	if _, err := s.candidates.GetByID(ctx, req.CandidateID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: candidate %s", ErrNotFound, req.CandidateID)
		}
		return nil, fmt.Errorf("internal error checking candidate: %w", err)
	}

	application := &models.Application{
		JobID:          req.JobID,
		CandidateID:    req.CandidateID,
		Status:         models.ApplicationStatusPending,
		AppliedDate:    req.AppliedDate,
		Resume:         req.Resume,
		CoverLetter:    req.CoverLetter,
		Experience:     req.Experience,
		ScreeningScore: req.ScreeningScore,
		Notes:          req.Notes,
		AssignedToID:   req.AssignedTo,
	}

	created, err := s.applications.Create(ctx, application)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: job %s", ErrNotFound, req.JobID)
		}
		log.Printf("ApplicationService: error creating application: %v", err)
		return nil, fmt.Errorf("internal error creating application: %w", err)
	}
	return created, nil
}

func (s *applicationService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	application, err := s.applications.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("ApplicationService: error updating application %s: %v", id, err)
		return nil, fmt.Errorf("internal error updating application: %w", err)
	}
	return application, nil
}

func (s *applicationService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.applications.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
