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

// ApplicationRepo implements storage.ApplicationRepository on gorm.
type ApplicationRepo struct {
	db *gorm.DB
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *gorm.DB) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func (r *ApplicationRepo) GetAll(ctx context.Context, filter *dto.ApplicationListFilter) ([]models.Application, error) {
	query := r.db.WithContext(ctx).Model(&models.Application{}).
		Preload("Job").
		Preload("Candidate")

	if filter != nil {
		if filter.Status != "" && filter.Status != "all" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.JobID != "" {
			query = query.Where("job_id = ?", filter.JobID)
		}
		if filter.CandidateID != "" {
			query = query.Where("candidate_id = ?", filter.CandidateID)
		}
	}

	var applications []models.Application
	if err := query.Order("created_at desc").Find(&applications).Error; err != nil {
		log.Printf("Error querying applications: %v", err)
		return nil, mapError(err)
	}
	return applications, nil
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Preload("Candidate").
		Preload("AssignedTo").
		First(&application, "id = ?", id).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &application, nil
}

// Create inserts the application and bumps the parent job's counter with a
// single in-database increment, so two concurrent creations cannot lose an
// update. Both writes commit or roll back together.
func (r *ApplicationRepo) Create(ctx context.Context, application *models.Application) (*models.Application, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.Job{}).Where("id = ?", application.JobID).Count(&exists).Error; err != nil {
			return mapError(err)
		}
		if exists == 0 {
			return storage.ErrNotFound
		}

		if err := tx.Create(application).Error; err != nil {
			return mapError(err)
		}

		return mapError(tx.Model(&models.Job{}).
			Where("id = ?", application.JobID).
			Update("applications_count", gorm.Expr("applications_count + ?", 1)).Error)
	})
	if err != nil {
		log.Printf("Error creating application for job %s: %v", application.JobID, err)
		return nil, err
	}
	return application, nil
}

func (r *ApplicationRepo) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	var application models.Application
	if err := r.db.WithContext(ctx).First(&application, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}

	if req.Status != nil {
		application.Status = *req.Status
	}
	if req.ScreeningScore != nil {
		application.ScreeningScore = req.ScreeningScore
	}
	if req.Notes != nil {
		application.Notes = *req.Notes
	}
	if req.AssignedTo != nil {
		application.AssignedToID = req.AssignedTo
	}
	if req.ReviewDate != nil {
		application.ReviewDate = req.ReviewDate
	}
	if req.RejectionReason != nil {
		application.RejectionReason = *req.RejectionReason
	}

	if err := r.db.WithContext(ctx).Save(&application).Error; err != nil {
		log.Printf("Error updating application %s: %v", id, err)
		return nil, mapError(err)
	}
	return &application, nil
}

// Delete removes the application without touching the job's counter; the
// counter is only ever incremented by creation.
func (r *ApplicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("Error deleting application %s: %v", id, res.Error)
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
