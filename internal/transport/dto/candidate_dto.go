package dto

import (
	"hr-dashboard/internal/models"
)

// CandidateListFilter mirrors JobListFilter for candidate listings.
type CandidateListFilter struct {
	Status string `form:"status"`
	Source string `form:"source"`
	Search string `form:"search"`
}

type CreateCandidateRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Email       string                 `json:"email" validate:"required,email"`
	Phone       string                 `json:"phone" validate:"required"`
	Experience  string                 `json:"experience" validate:"required"`
	Skills      []string               `json:"skills"`
	Status      models.CandidateStatus `json:"status" validate:"omitempty,oneof=active inactive hired rejected"`
	AppliedDate string                 `json:"appliedDate" validate:"required,datetime=2006-01-02"`
	Resume      string                 `json:"resume"`
	CoverLetter string                 `json:"coverLetter"`
	Source      models.CandidateSource `json:"source" validate:"omitempty,oneof=website referral job_board social_media"`
	Notes       string                 `json:"notes"`
	Rating      *int                   `json:"rating" validate:"omitempty,min=1,max=5"`
	Tags        []string               `json:"tags"`
}

type UpdateCandidateRequest struct {
	Name        *string                 `json:"name"`
	Email       *string                 `json:"email" validate:"omitempty,email"`
	Phone       *string                 `json:"phone"`
	Experience  *string                 `json:"experience"`
	Skills      []string                `json:"skills"`
	Status      *models.CandidateStatus `json:"status" validate:"omitempty,oneof=active inactive hired rejected"`
	AppliedDate *string                 `json:"appliedDate" validate:"omitempty,datetime=2006-01-02"`
	Resume      *string                 `json:"resume"`
	CoverLetter *string                 `json:"coverLetter"`
	Source      *models.CandidateSource `json:"source" validate:"omitempty,oneof=website referral job_board social_media"`
	Notes       *string                 `json:"notes"`
	Rating      *int                    `json:"rating" validate:"omitempty,min=1,max=5"`
	Tags        []string                `json:"tags"`
}
