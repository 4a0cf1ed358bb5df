package dto

import (
	"hr-dashboard/internal/models"
)

// JobListFilter is the optional query filter for job listings. A value of
// "all" on the exact-match fields means no filter; Search matches title or
// description case-insensitively. All provided filters are ANDed.
type JobListFilter struct {
	Status     string `form:"status"`
	Department string `form:"department"`
	Type       string `form:"type"`
	Search     string `form:"search"`
}

type CreateJobRequest struct {
	Title        string                `json:"title" validate:"required"`
	Department   string                `json:"department" validate:"required"`
	Location     string                `json:"location" validate:"required"`
	Type         models.EmploymentType `json:"type" validate:"required,oneof=full-time part-time contract internship"`
	Experience   string                `json:"experience" validate:"required"`
	Salary       string                `json:"salary" validate:"required"`
	Description  string                `json:"description" validate:"required"`
	Deadline     string                `json:"deadline" validate:"required"`
	Status       models.JobStatus      `json:"status" validate:"omitempty,oneof=active closed draft"`
	PostedDate   string                `json:"postedDate"`
	Requirements []string              `json:"requirements"`
	Benefits     []string              `json:"benefits"`
	Tags         []string              `json:"tags"`
}

type UpdateJobRequest struct {
	Title        *string                `json:"title"`
	Department   *string                `json:"department"`
	Location     *string                `json:"location"`
	Type         *models.EmploymentType `json:"type" validate:"omitempty,oneof=full-time part-time contract internship"`
	Experience   *string                `json:"experience"`
	Salary       *string                `json:"salary"`
	Description  *string                `json:"description"`
	Deadline     *string                `json:"deadline"`
	Status       *models.JobStatus      `json:"status" validate:"omitempty,oneof=active closed draft"`
	PostedDate   *string                `json:"postedDate"`
	Requirements []string               `json:"requirements"`
	Benefits     []string               `json:"benefits"`
	Tags         []string               `json:"tags"`
}
