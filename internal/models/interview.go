package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InterviewType enumerates the interview formats.
type InterviewType string

const (
	InterviewTechnical   InterviewType = "technical"
	InterviewBehavioral  InterviewType = "behavioral"
	InterviewFinal       InterviewType = "final"
	InterviewPhoneScreen InterviewType = "phone_screen"
)

// InterviewStatus is the scheduling state of an interview.
type InterviewStatus string

const (
	InterviewStatusScheduled   InterviewStatus = "scheduled"
	InterviewStatusCompleted   InterviewStatus = "completed"
	InterviewStatusCancelled   InterviewStatus = "cancelled"
	InterviewStatusRescheduled InterviewStatus = "rescheduled"
)

// Interview is a scheduled session between a candidate and an interviewer for
// a specific job. Date is a date-only ISO string (validated at the API edge);
// weekly counts compare it lexicographically against date-only bounds, so a
// timestamp suffix would silently fall out of the window.
type Interview struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CandidateID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"candidateId"`
	Candidate     *Candidate      `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
	JobID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"jobId"`
	Job           *Job            `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Date          string          `gorm:"not null;index" json:"date"`
	Type          InterviewType   `gorm:"type:varchar(15);not null" json:"type"`
	InterviewerID uuid.UUID       `gorm:"type:uuid;not null" json:"interviewer"`
	Interviewer   *User           `gorm:"foreignKey:InterviewerID" json:"interviewerUser,omitempty"`
	Status        InterviewStatus `gorm:"type:varchar(15);not null;default:scheduled" json:"status"`
	Notes         string          `json:"notes,omitempty"`
	Score         *int            `json:"score,omitempty"`
	Feedback      string          `json:"feedback,omitempty"`
	NextRound     string          `gorm:"type:varchar(10)" json:"nextRound,omitempty"`
	Duration      int             `json:"duration,omitempty"`
	Location      string          `json:"location,omitempty"`
	MeetingLink   string          `json:"meetingLink,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (i *Interview) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
