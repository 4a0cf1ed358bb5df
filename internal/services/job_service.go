package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hr-dashboard/internal/email"
	"hr-dashboard/internal/models"
	"hr-dashboard/internal/storage"
	"hr-dashboard/internal/transport/dto"
)

type jobService struct {
	jobs   storage.JobRepository
	users  storage.UserRepository
	sender email.Sender
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobs storage.JobRepository, users storage.UserRepository, sender email.Sender) JobService {
	return &jobService{jobs: jobs, users: users, sender: sender}
}

func (s *jobService) List(ctx context.Context, filter *dto.JobListFilter) ([]models.Job, error) {
	return s.jobs.GetAll(ctx, filter)
}

func (s *jobService) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return job, err
}

// Create persists the posting and notifies HR members of the job's department
// in the background. Delivery failures are logged and never affect the
// response.
func (s *jobService) Create(ctx context.Context, createdBy uuid.UUID, req *dto.CreateJobRequest) (*models.Job, error) {
	status := req.Status
	if status == "" {
		status = models.JobStatusActive
	}

	job := &models.Job{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		Experience:   req.Experience,
		Salary:       req.Salary,
		Description:  req.Description,
		Deadline:     req.Deadline,
		Status:       status,
		PostedDate:   req.PostedDate,
		CreatedByID:  &createdBy,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		Tags:         req.Tags,
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		log.Printf("JobService: error creating job: %v", err)
		return nil, fmt.Errorf("internal error creating job: %w", err)
	}

	go s.notifyTeam(created)

	return created, nil
}

// notifyTeam emails the department's HR members about the new posting. It
// runs detached from the request; the posting is already committed.
func (s *jobService) notifyTeam(job *models.Job) {
	members, err := s.users.GetByDepartmentAndRoles(context.Background(), job.Department,
		[]models.Role{models.RoleHRManager, models.RoleHRStaff})
	if err != nil {
		log.Printf("JobService: error looking up team members for %q: %v", job.Department, err)
		return
	}

	body := fmt.Sprintf("<h3>New job posted: %s</h3><p>Department: %s</p><p>Location: %s</p>",
		job.Title, job.Department, job.Location)
	for _, member := range members {
		if err := s.sender.Send(member.Email, "New Job Posted", body); err != nil {
			log.Printf("JobService: failed to notify %s about job %s: %v", member.Email, job.ID, err)
		}
	}
}

func (s *jobService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobs.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("JobService: error updating job %s: %v", id, err)
		return nil, fmt.Errorf("internal error updating job: %w", err)
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.jobs.Delete(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, storage.ErrReferenced):
		return fmt.Errorf("%w: job has applications", ErrConflict)
	}
	return err
}
