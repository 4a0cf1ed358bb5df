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

// JobRepo implements storage.JobRepository on gorm.
type JobRepo struct {
	db *gorm.DB
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *gorm.DB) *JobRepo {
	return &JobRepo{db: db}
}

var _ storage.JobRepository = (*JobRepo)(nil)

// GetAll applies the optional filters from the listing query. "all" (or an
// absent value) on the exact-match fields means no filter; search matches
// title or description case-insensitively. All filters are ANDed.
func (r *JobRepo) GetAll(ctx context.Context, filter *dto.JobListFilter) ([]models.Job, error) {
	query := r.db.WithContext(ctx).Model(&models.Job{}).Preload("CreatedBy")

	if filter != nil {
		if filter.Status != "" && filter.Status != "all" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.Department != "" && filter.Department != "all" {
			query = query.Where("department = ?", filter.Department)
		}
		if filter.Type != "" && filter.Type != "all" {
			query = query.Where("type = ?", filter.Type)
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
		}
	}

	var jobs []models.Job
	if err := query.Order("created_at desc").Find(&jobs).Error; err != nil {
		log.Printf("Error querying jobs: %v", err)
		return nil, mapError(err)
	}
	return jobs, nil
}

func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).Preload("CreatedBy").First(&job, "id = ?", id).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &job, nil
}

func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		log.Printf("Error creating job %q: %v", job.Title, err)
		return nil, mapError(err)
	}
	return job, nil
}

func (r *JobRepo) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Department != nil {
		job.Department = *req.Department
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Experience != nil {
		job.Experience = *req.Experience
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Deadline != nil {
		job.Deadline = *req.Deadline
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.PostedDate != nil {
		job.PostedDate = *req.PostedDate
	}
	if req.Requirements != nil {
		job.Requirements = req.Requirements
	}
	if req.Benefits != nil {
		job.Benefits = req.Benefits
	}
	if req.Tags != nil {
		job.Tags = req.Tags
	}

	if err := r.db.WithContext(ctx).Save(&job).Error; err != nil {
		log.Printf("Error updating job %s: %v", id, err)
		return nil, mapError(err)
	}
	return &job, nil
}

// Delete refuses to remove a job that applications still reference rather
// than leaving dangling rows behind.
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.Application{}).Where("job_id = ?", id).Count(&refs).Error; err != nil {
			return mapError(err)
		}
		if refs > 0 {
			return storage.ErrReferenced
		}

		res := tx.Delete(&models.Job{}, "id = ?", id)
		if res.Error != nil {
			log.Printf("Error deleting job %s: %v", id, res.Error)
			return mapError(res.Error)
		}
		if res.RowsAffected == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
}
