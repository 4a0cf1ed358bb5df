package dto

import (
	"time"

	"github.com/google/uuid"

	"hr-dashboard/internal/models"
)

// ApplicationListFilter narrows application listings.
type ApplicationListFilter struct {
	Status      string `form:"status"`
	JobID       string `form:"jobId"`
	CandidateID string `form:"candidateId"`
}

type CreateApplicationRequest struct {
	JobID          uuid.UUID  `json:"jobId" validate:"required"`
	CandidateID    uuid.UUID  `json:"candidateId" validate:"required"`
	AppliedDate    string     `json:"appliedDate" validate:"required,datetime=2006-01-02"`
	Resume         string     `json:"resume" validate:"required"`
	CoverLetter    string     `json:"coverLetter" validate:"required"`
	Experience     string     `json:"experience" validate:"required"`
	ScreeningScore *int       `json:"screeningScore" validate:"omitempty,min=0,max=100"`
	Notes          string     `json:"notes"`
	AssignedTo     *uuid.UUID `json:"assignedTo"`
}

type UpdateApplicationRequest struct {
	Status          *models.ApplicationStatus `json:"status" validate:"omitempty,oneof=pending reviewed shortlisted interviewed accepted rejected"`
	ScreeningScore  *int                      `json:"screeningScore" validate:"omitempty,min=0,max=100"`
	Notes           *string                   `json:"notes"`
	AssignedTo      *uuid.UUID                `json:"assignedTo"`
	ReviewDate      *time.Time                `json:"reviewDate"`
	RejectionReason *string                   `json:"rejectionReason"`
}
