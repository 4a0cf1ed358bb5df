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

type candidateService struct {
	candidates storage.CandidateRepository
}

// NewCandidateService creates a new instance of CandidateService.
func NewCandidateService(candidates storage.CandidateRepository) CandidateService {
	return &candidateService{candidates: candidates}
}

func (s *candidateService) List(ctx context.Context, filter *dto.CandidateListFilter) ([]models.Candidate, error) {
	return s.candidates.GetAll(ctx, filter)
}

func (s *candidateService) GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	candidate, err := s.candidates.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return candidate, err
}

func (s *candidateService) Create(ctx context.Context, req *dto.CreateCandidateRequest) (*models.Candidate, error) {
	status := req.Status
	if status == "" {
		status = models.CandidateStatusActive
	}
	source := req.Source
	if source == "" {
		source = models.SourceWebsite
	}

	candidate := &models.Candidate{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Experience:  req.Experience,
		Skills:      req.Skills,
		Status:      status,
		AppliedDate: req.AppliedDate,
		Resume:      req.Resume,
		CoverLetter: req.CoverLetter,
		Source:      source,
		Notes:       req.Notes,
		Rating:      req.Rating,
		Tags:        req.Tags,
	}

	created, err := s.candidates.Create(ctx, candidate)
	if err != nil {
		log.Printf("CandidateService: error creating candidate: %v", err)
		return nil, fmt.Errorf("internal error creating candidate: %w", err)
	}
	return created, nil
}

func (s *candidateService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	candidate, err := s.candidates.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("CandidateService: error updating candidate %s: %v", id, err)
		return nil, fmt.Errorf("internal error updating candidate: %w", err)
	}
	return candidate, nil
}

func (s *candidateService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.candidates.Delete(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrReferenced):
		return fmt.Errorf("%w: candidate has applications or interviews", ErrConflict)
	}
	return err
}
