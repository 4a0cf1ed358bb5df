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

type interviewService struct {
	interviews storage.InterviewRepository
}

// NewInterviewService creates a new instance of InterviewService.
func NewInterviewService(interviews storage.InterviewRepository) InterviewService {
	return &interviewService{interviews: interviews}
}

func (s *interviewService) List(ctx context.Context, filter *dto.InterviewListFilter) ([]models.Interview, error) {
	return s.interviews.GetAll(ctx, filter)
}

func (s *interviewService) GetByID(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	interview, err := s.interviews.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return interview, err
}

func (s *interviewService) Create(ctx context.Context, req *dto.CreateInterviewRequest) (*models.Interview, error) {
	interview := &models.Interview{
		CandidateID:   req.CandidateID,
		JobID:         req.JobID,
		Date:          req.Date,
		Type:          req.Type,
		InterviewerID: req.Interviewer,
		Status:        models.InterviewStatusScheduled,
		Duration:      req.Duration,
		Location:      req.Location,
		MeetingLink:   req.MeetingLink,
		Notes:         req.Notes,
	}

	created, err := s.interviews.Create(ctx, interview)
	if err != nil {
		log.Printf("InterviewService: error creating interview: %v", err)
		return nil, fmt.Errorf("internal error creating interview: %w", err)
	}
	return created, nil
}

func (s *interviewService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	interview, err := s.interviews.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("InterviewService: error updating interview %s: %v", id, err)
		return nil, fmt.Errorf("internal error updating interview: %w", err)
	}
	return interview, nil
}

func (s *interviewService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.interviews.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
