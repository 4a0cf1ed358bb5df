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

// CandidateRepo implements storage.CandidateRepository on gorm.
type CandidateRepo struct {
	db *gorm.DB
}

// NewCandidateRepo creates a new CandidateRepo.
func NewCandidateRepo(db *gorm.DB) *CandidateRepo {
	return &CandidateRepo{db: db}
}

var _ storage.CandidateRepository = (*CandidateRepo)(nil)

func (r *CandidateRepo) GetAll(ctx context.Context, filter *dto.CandidateListFilter) ([]models.Candidate, error) {
	query := r.db.WithContext(ctx).Model(&models.Candidate{})

	if filter != nil {
		if filter.Status != "" && filter.Status != "all" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.Source != "" && filter.Source != "all" {
			query = query.Where("source = ?", filter.Source)
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
		}
	}

	var candidates []models.Candidate
	if err := query.Order("created_at desc").Find(&candidates).Error; err != nil {
		log.Printf("Error querying candidates: %v", err)
		return nil, mapError(err)
	}
	return candidates, nil
}

func (r *CandidateRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.WithContext(ctx).First(&candidate, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &candidate, nil
}

func (r *CandidateRepo) Create(ctx context.Context, candidate *models.Candidate) (*models.Candidate, error) {
	if err := r.db.WithContext(ctx).Create(candidate).Error; err != nil {
		log.Printf("Error creating candidate %q: %v", candidate.Name, err)
		return nil, mapError(err)
	}
	return candidate, nil
}

func (r *CandidateRepo) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.WithContext(ctx).First(&candidate, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}

	if req.Name != nil {
		candidate.Name = *req.Name
	}
	if req.Email != nil {
		candidate.Email = *req.Email
	}
	if req.Phone != nil {
		candidate.Phone = *req.Phone
	}
	if req.Experience != nil {
		candidate.Experience = *req.Experience
	}
	if req.Skills != nil {
		candidate.Skills = req.Skills
	}
	if req.Status != nil {
		candidate.Status = *req.Status
	}
	if req.AppliedDate != nil {
		candidate.AppliedDate = *req.AppliedDate
	}
	if req.Resume != nil {
		candidate.Resume = *req.Resume
	}
	if req.CoverLetter != nil {
		candidate.CoverLetter = *req.CoverLetter
	}
	if req.Source != nil {
		candidate.Source = *req.Source
	}
	if req.Notes != nil {
		candidate.Notes = *req.Notes
	}
	if req.Rating != nil {
		candidate.Rating = req.Rating
	}
	if req.Tags != nil {
		candidate.Tags = req.Tags
	}

	if err := r.db.WithContext(ctx).Save(&candidate).Error; err != nil {
		log.Printf("Error updating candidate %s: %v", id, err)
		return nil, mapError(err)
	}
	return &candidate, nil
}

// Delete refuses to remove a candidate still referenced by applications or
// interviews.
func (r *CandidateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.Application{}).Where("candidate_id = ?", id).Count(&refs).Error; err != nil {
			return mapError(err)
		}
		if refs == 0 {
			if err := tx.Model(&models.Interview{}).Where("candidate_id = ?", id).Count(&refs).Error; err != nil {
				return mapError(err)
			}
		}
		if refs > 0 {
			return storage.ErrReferenced
		}

		res := tx.Delete(&models.Candidate{}, "id = ?", id)
		if res.Error != nil {
			log.Printf("Error deleting candidate %s: %v", id, res.Error)
			return mapError(res.Error)
		}
		if res.RowsAffected == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
}
