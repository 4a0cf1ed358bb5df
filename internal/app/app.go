package app

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"hr-dashboard/config"
	"hr-dashboard/internal/services"
)

// Application holds core application dependencies. DB is nil when the server
// runs in degraded mode without a database; only the health endpoint is
// registered in that case.
type Application struct {
	Config    *config.Config
	DB        *gorm.DB
	Validator *validator.Validate

	AuthService          services.AuthService
	UserService          services.UserService
	JobService           services.JobService
	CandidateService     services.CandidateService
	ApplicationService   services.ApplicationService
	InterviewService     services.InterviewService
	EmailTemplateService services.EmailTemplateService
	ReportsService       services.ReportsService
}
