package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// JobStatus is the lifecycle state of a posting.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

// EmploymentType enumerates the contract forms a job can be posted under.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

// Job is a posting candidates apply to. ApplicationsCount is incremented only
// by successful Application creation and never decremented here.
type Job struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title             string         `gorm:"not null" json:"title"`
	Department        string         `gorm:"not null;index" json:"department"`
	Location          string         `gorm:"not null" json:"location"`
	Type              EmploymentType `gorm:"type:varchar(20);not null" json:"type"`
	Experience        string         `gorm:"not null" json:"experience"`
	Salary            string         `gorm:"not null" json:"salary"`
	Description       string         `gorm:"not null" json:"description"`
	Deadline          string         `gorm:"not null" json:"deadline"`
	Status            JobStatus      `gorm:"type:varchar(10);not null;default:active;index" json:"status"`
	PostedDate        string         `gorm:"not null" json:"postedDate"`
	ApplicationsCount int            `gorm:"not null;default:0" json:"applicationsCount"`
	CreatedByID       *uuid.UUID     `gorm:"type:uuid" json:"createdBy,omitempty"`
	CreatedBy         *User          `gorm:"foreignKey:CreatedByID" json:"creator,omitempty"`
	Requirements      pq.StringArray `gorm:"type:text[]" json:"requirements,omitempty"`
	Benefits          pq.StringArray `gorm:"type:text[]" json:"benefits,omitempty"`
	Tags              pq.StringArray `gorm:"type:text[]" json:"tags,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
