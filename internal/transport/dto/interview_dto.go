package dto

import (
	"github.com/google/uuid"

	"hr-dashboard/internal/models"
)

// InterviewListFilter narrows interview listings.
type InterviewListFilter struct {
	Status      string `form:"status"`
	Type        string `form:"type"`
	CandidateID string `form:"candidateId"`
	JobID       string `form:"jobId"`
}

type CreateInterviewRequest struct {
	CandidateID uuid.UUID            `json:"candidateId" validate:"required"`
	JobID       uuid.UUID            `json:"jobId" validate:"required"`
	Date        string               `json:"date" validate:"required,datetime=2006-01-02"`
	Type        models.InterviewType `json:"type" validate:"required,oneof=technical behavioral final phone_screen"`
	Interviewer uuid.UUID            `json:"interviewer" validate:"required"`
	Duration    int                  `json:"duration"`
	Location    string               `json:"location"`
	MeetingLink string               `json:"meetingLink"`
	Notes       string               `json:"notes"`
}

type UpdateInterviewRequest struct {
	Date        *string                 `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Type        *models.InterviewType   `json:"type" validate:"omitempty,oneof=technical behavioral final phone_screen"`
	Interviewer *uuid.UUID              `json:"interviewer"`
	Status      *models.InterviewStatus `json:"status" validate:"omitempty,oneof=scheduled completed cancelled rescheduled"`
	Notes       *string                 `json:"notes"`
	Score       *int                    `json:"score" validate:"omitempty,min=1,max=10"`
	Feedback    *string                 `json:"feedback"`
	NextRound   *string                 `json:"nextRound" validate:"omitempty,oneof=yes no maybe"`
	Duration    *int                    `json:"duration"`
	Location    *string                 `json:"location"`
	MeetingLink *string                 `json:"meetingLink"`
}
