package services

import (
	"context"

	"github.com/google/uuid"

	"hr-dashboard/internal/models"
	"hr-dashboard/internal/transport/dto"
)

// AuthService issues credentials and sessions.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// UserService manages dashboard accounts.
type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error)
	// Delete refuses self-deletion: callerID deleting its own record fails
	// with ErrInvalidOperation regardless of role.
	Delete(ctx context.Context, callerID, id uuid.UUID) error
}

// JobService manages postings.
type JobService interface {
	List(ctx context.Context, filter *dto.JobListFilter) ([]models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	Create(ctx context.Context, createdBy uuid.UUID, req *dto.CreateJobRequest) (*models.Job, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CandidateService manages candidate records.
type CandidateService interface {
	List(ctx context.Context, filter *dto.CandidateListFilter) ([]models.Candidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	Create(ctx context.Context, req *dto.CreateCandidateRequest) (*models.Candidate, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCandidateRequest) (*models.Candidate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ApplicationService manages applications and the job counter invariant.
type ApplicationService interface {
	List(ctx context.Context, filter *dto.ApplicationListFilter) ([]models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateApplicationRequest) (*models.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InterviewService manages interview scheduling.
type InterviewService interface {
	List(ctx context.Context, filter *dto.InterviewListFilter) ([]models.Interview, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Interview, error)
	Create(ctx context.Context, req *dto.CreateInterviewRequest) (*models.Interview, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInterviewRequest) (*models.Interview, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EmailTemplateService manages templates and outbound sends.
type EmailTemplateService interface {
	List(ctx context.Context) ([]models.EmailTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.EmailTemplate, error)
	Create(ctx context.Context, req *dto.CreateEmailTemplateRequest) (*models.EmailTemplate, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEmailTemplateRequest) (*models.EmailTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Send(ctx context.Context, req *dto.SendEmailRequest) (bool, error)
}

// ReportsService computes dashboard and hiring reports fresh on every call.
type ReportsService interface {
	DashboardStats(ctx context.Context) (*dto.DashboardStats, error)
	HiringMetrics(ctx context.Context, filter *dto.HiringMetricsFilter) (*dto.HiringMetrics, error)
	CandidatePipeline(ctx context.Context) ([]dto.PipelineBucket, error)
}
