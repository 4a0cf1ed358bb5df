package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CandidateStatus is the lifecycle state of a candidate record.
type CandidateStatus string

const (
	CandidateStatusActive   CandidateStatus = "active"
	CandidateStatusInactive CandidateStatus = "inactive"
	CandidateStatusHired    CandidateStatus = "hired"
	CandidateStatusRejected CandidateStatus = "rejected"
)

// CandidateSource is the channel a candidate came in through.
type CandidateSource string

const (
	SourceWebsite     CandidateSource = "website"
	SourceReferral    CandidateSource = "referral"
	SourceJobBoard    CandidateSource = "job_board"
	SourceSocialMedia CandidateSource = "social_media"
)

// Candidate is a person in the hiring pipeline. AppliedDate is kept as an ISO
// date string the way the store has always recorded it.
type Candidate struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Email       string          `gorm:"not null" json:"email"`
	Phone       string          `gorm:"not null" json:"phone"`
	Experience  string          `gorm:"not null" json:"experience"`
	Skills      pq.StringArray  `gorm:"type:text[]" json:"skills,omitempty"`
	Status      CandidateStatus `gorm:"type:varchar(10);not null;default:active" json:"status"`
	AppliedDate string          `gorm:"not null" json:"appliedDate"`
	Resume      string          `json:"resume,omitempty"`
	CoverLetter string          `json:"coverLetter,omitempty"`
	Source      CandidateSource `gorm:"type:varchar(20);not null;default:website" json:"source"`
	Notes       string          `json:"notes,omitempty"`
	Rating      *int            `json:"rating,omitempty"`
	Tags        pq.StringArray  `gorm:"type:text[]" json:"tags,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (c *Candidate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
