package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusReviewed    ApplicationStatus = "reviewed"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Application links exactly one Candidate to one Job. Creating an application
// atomically increments the job's ApplicationsCount.
type Application struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	JobID           uuid.UUID         `gorm:"type:uuid;not null;index" json:"jobId"`
	Job             *Job              `gorm:"foreignKey:JobID" json:"job,omitempty"`
	CandidateID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"candidateId"`
	Candidate       *Candidate        `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
	Status          ApplicationStatus `gorm:"type:varchar(15);not null;default:pending;index" json:"status"`
	AppliedDate     string            `gorm:"not null" json:"appliedDate"`
	Resume          string            `gorm:"not null" json:"resume"`
	CoverLetter     string            `gorm:"not null" json:"coverLetter"`
	Experience      string            `gorm:"not null" json:"experience"`
	ScreeningScore  *int              `json:"screeningScore,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	AssignedToID    *uuid.UUID        `gorm:"type:uuid" json:"assignedTo,omitempty"`
	AssignedTo      *User             `gorm:"foreignKey:AssignedToID" json:"reviewer,omitempty"`
	ReviewDate      *time.Time        `json:"reviewDate,omitempty"`
	RejectionReason string            `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
