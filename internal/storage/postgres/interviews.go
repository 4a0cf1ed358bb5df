package postgres

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hr-dashboard/internal/models"
	"hr-dashboard/internal/storage"
	"hr-dashboard/internal/transport/dto"
)

// InterviewRepo implements storage.InterviewRepository on gorm.
type InterviewRepo struct {
	db *gorm.DB
}

// NewInterviewRepo creates a new InterviewRepo.
func NewInterviewRepo(db *gorm.DB) *InterviewRepo {
	return &InterviewRepo{db: db}
}

var _ storage.InterviewRepository = (*InterviewRepo)(nil)

func (r *InterviewRepo) GetAll(ctx context.Context, filter *dto.InterviewListFilter) ([]models.Interview, error) {
	query := r.db.WithContext(ctx).Model(&models.Interview{}).
		Preload("Candidate").
		Preload("Job").
		Preload("Interviewer")

	if filter != nil {
		if filter.Status != "" && filter.Status != "all" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.Type != "" && filter.Type != "all" {
			query = query.Where("type = ?", filter.Type)
		}
		if filter.CandidateID != "" {
			query = query.Where("candidate_id = ?", filter.CandidateID)
		}
		if filter.JobID != "" {
			query = query.Where("job_id = ?", filter.JobID)
		}
	}

	var interviews []models.Interview
	if err := query.Order("date asc").Find(&interviews).Error; err != nil {
		log.Printf("Error querying interviews: %v", err)
		return nil, mapError(err)
	}
	return interviews, nil
}

func (r *InterviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	err := r.db.WithContext(ctx).
		Preload("Candidate").
		Preload("Job").
		Preload("Interviewer").
		First(&interview, "id = ?", id).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &interview, nil
}

func (r *InterviewRepo) Create(ctx context.Context, interview *models.Interview) (*models.Interview, error) {
	if err := r.db.WithContext(ctx).Create(interview).Error; err != nil {
		log.Printf("Error creating interview for candidate %s: %v", interview.CandidateID, err)
		return nil, mapError(err)
	}
	return interview, nil
}

func (r *InterviewRepo) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	var interview models.Interview
	if err := r.db.WithContext(ctx).First(&interview, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}

	if req.Date != nil {
		interview.Date = *req.Date
	}
	if req.Type != nil {
		interview.Type = *req.Type
	}
	if req.Interviewer != nil {
		interview.InterviewerID = *req.Interviewer
	}
	if req.Status != nil {
		interview.Status = *req.Status
	}
	if req.Notes != nil {
		interview.Notes = *req.Notes
	}
	if req.Score != nil {
		interview.Score = req.Score
	}
	if req.Feedback != nil {
		interview.Feedback = *req.Feedback
	}
	if req.NextRound != nil {
		interview.NextRound = *req.NextRound
	}
	if req.Duration != nil {
		interview.Duration = *req.Duration
	}
	if req.Location != nil {
		interview.Location = *req.Location
	}
	if req.MeetingLink != nil {
		interview.MeetingLink = *req.MeetingLink
	}

	if err := r.db.WithContext(ctx).Save(&interview).Error; err != nil {
		log.Printf("Error updating interview %s: %v", id, err)
		return nil, mapError(err)
	}
	return &interview, nil
}

func (r *InterviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Interview{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("Error deleting interview %s: %v", id, res.Error)
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
