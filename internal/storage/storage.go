package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hr-dashboard/internal/models"
	"hr-dashboard/internal/transport/dto"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByEmailOrUsername backs the registration conflict check.
	GetByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	// GetByDepartmentAndRoles backs new-job notifications.
	GetByDepartmentAndRoles(ctx context.Context, department string, roles []models.Role) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error)
	SetLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	GetAll(ctx context.Context, filter *dto.JobListFilter) ([]models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error)
	// Delete fails with ErrReferenced while applications still point at the job.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CandidateRepository defines the interface for candidate data operations.
type CandidateRepository interface {
	GetAll(ctx context.Context, filter *dto.CandidateListFilter) ([]models.Candidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	Create(ctx context.Context, candidate *models.Candidate) (*models.Candidate, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCandidateRequest) (*models.Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	GetAll(ctx context.Context, filter *dto.ApplicationListFilter) ([]models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	// Create persists the application and atomically increments the parent
	// job's applications counter in the same transaction.
	Create(ctx context.Context, application *models.Application) (*models.Application, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateApplicationRequest) (*models.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InterviewRepository defines the interface for interview data operations.
type InterviewRepository interface {
	GetAll(ctx context.Context, filter *dto.InterviewListFilter) ([]models.Interview, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Interview, error)
	Create(ctx context.Context, interview *models.Interview) (*models.Interview, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInterviewRequest) (*models.Interview, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EmailTemplateRepository defines the interface for template data operations.
type EmailTemplateRepository interface {
	GetAll(ctx context.Context) ([]models.EmailTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.EmailTemplate, error)
	GetByName(ctx context.Context, name string) (*models.EmailTemplate, error)
	Create(ctx context.Context, template *models.EmailTemplate) (*models.EmailTemplate, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEmailTemplateRequest) (*models.EmailTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReportsRepository exposes the read-only aggregations behind the dashboard
// and reports. Date bounds are ISO date strings matching how the entities
// store their dates; empty bounds mean unbounded.
type ReportsRepository interface {
	CountApplications(ctx context.Context, startDate, endDate string) (int64, error)
	CountApplicationsByStatus(ctx context.Context, startDate, endDate string) ([]dto.StatusCount, error)
	CountApplicationsByDepartment(ctx context.Context, startDate, endDate string) ([]dto.DepartmentCount, error)
	// AcceptedApplicationDates returns the candidate appliedDate of every
	// accepted application in range, for the time-to-hire average.
	AcceptedApplicationDates(ctx context.Context, startDate, endDate string) ([]string, error)
	CountActiveJobs(ctx context.Context) (int64, error)
	CountCandidates(ctx context.Context) (int64, error)
	CountInterviewsBetween(ctx context.Context, startDate, endDate string) (int64, error)
	CountApplicationsCreatedSince(ctx context.Context, since time.Time) (int64, error)
	TopDepartments(ctx context.Context, limit int) ([]dto.DepartmentCount, error)
	RecentApplications(ctx context.Context, limit int) ([]dto.RecentApplication, error)
	PipelineEntries(ctx context.Context) ([]dto.PipelineEntry, error)
}
