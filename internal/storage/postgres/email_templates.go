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

// EmailTemplateRepo implements storage.EmailTemplateRepository on gorm.
type EmailTemplateRepo struct {
	db *gorm.DB
}

// NewEmailTemplateRepo creates a new EmailTemplateRepo.
func NewEmailTemplateRepo(db *gorm.DB) *EmailTemplateRepo {
	return &EmailTemplateRepo{db: db}
}

var _ storage.EmailTemplateRepository = (*EmailTemplateRepo)(nil)

func (r *EmailTemplateRepo) GetAll(ctx context.Context) ([]models.EmailTemplate, error) {
	var templates []models.EmailTemplate
	if err := r.db.WithContext(ctx).Order("name asc").Find(&templates).Error; err != nil {
		log.Printf("Error querying email templates: %v", err)
		return nil, mapError(err)
	}
	return templates, nil
}

func (r *EmailTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.EmailTemplate, error) {
	var template models.EmailTemplate
	if err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &template, nil
}

func (r *EmailTemplateRepo) GetByName(ctx context.Context, name string) (*models.EmailTemplate, error) {
	var template models.EmailTemplate
	if err := r.db.WithContext(ctx).First(&template, "name = ?", name).Error; err != nil {
		return nil, mapError(err)
	}
	return &template, nil
}

func (r *EmailTemplateRepo) Create(ctx context.Context, template *models.EmailTemplate) (*models.EmailTemplate, error) {
	if err := r.db.WithContext(ctx).Create(template).Error; err != nil {
		log.Printf("Error creating email template %q: %v", template.Name, err)
		return nil, mapError(err)
	}
	return template, nil
}

func (r *EmailTemplateRepo) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEmailTemplateRequest) (*models.EmailTemplate, error) {
	var template models.EmailTemplate
	if err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Subject != nil {
		template.Subject = *req.Subject
	}
	if req.Body != nil {
		template.Body = *req.Body
	}
	if req.Variables != nil {
		template.Variables = req.Variables
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	if err := r.db.WithContext(ctx).Save(&template).Error; err != nil {
		log.Printf("Error updating email template %s: %v", id, err)
		return nil, mapError(err)
	}
	return &template, nil
}

func (r *EmailTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.EmailTemplate{}, "id = ?", id)
	if res.Error != nil {
		log.Printf("Error deleting email template %s: %v", id, res.Error)
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
