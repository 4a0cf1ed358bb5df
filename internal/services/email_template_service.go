package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hr-dashboard/internal/email"
	"hr-dashboard/internal/models"
	"hr-dashboard/internal/storage"
	"hr-dashboard/internal/transport/dto"
)

type emailTemplateService struct {
	templates storage.EmailTemplateRepository
	sender    email.Sender
}

// NewEmailTemplateService creates a new instance of EmailTemplateService.
func NewEmailTemplateService(templates storage.EmailTemplateRepository, sender email.Sender) EmailTemplateService {
	return &emailTemplateService{templates: templates, sender: sender}
}

func (s *emailTemplateService) List(ctx context.Context) ([]models.EmailTemplate, error) {
	return s.templates.GetAll(ctx)
}

func (s *emailTemplateService) GetByID(ctx context.Context, id uuid.UUID) (*models.EmailTemplate, error) {
	template, err := s.templates.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return template, err
}

func (s *emailTemplateService) Create(ctx context.Context, req *dto.CreateEmailTemplateRequest) (*models.EmailTemplate, error) {
	template := &models.EmailTemplate{
		Name:      req.Name,
		Subject:   req.Subject,
		Body:      req.Body,
		Variables: req.Variables,
		IsActive:  true,
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	created, err := s.templates.Create(ctx, template)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: template name already in use", ErrConflict)
		}
		log.Printf("EmailTemplateService: error creating template: %v", err)
		return nil, fmt.Errorf("internal error creating email template: %w", err)
	}
	return created, nil
}

func (s *emailTemplateService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateEmailTemplateRequest) (*models.EmailTemplate, error) {
	template, err := s.templates.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: template name already in use", ErrConflict)
		}
		log.Printf("EmailTemplateService: error updating template %s: %v", id, err)
		return nil, fmt.Errorf("internal error updating email template: %w", err)
	}
	return template, nil
}

func (s *emailTemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.templates.Delete(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// Send delivers an email built either from a stored template, with {{variable}}
// substitution, or from the raw subject and body in the request.
func (s *emailTemplateService) Send(ctx context.Context, req *dto.SendEmailRequest) (bool, error) {
	subject := req.Subject
	body := req.Body

	if req.TemplateName != "" {
		template, err := s.templates.GetByName(ctx, req.TemplateName)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return false, fmt.Errorf("%w: email template %q", ErrNotFound, req.TemplateName)
			}
			return false, fmt.Errorf("internal error loading email template: %w", err)
		}
		// Inactive templates are invisible to senders.
		if !template.IsActive {
			return false, fmt.Errorf("%w: email template %q", ErrNotFound, req.TemplateName)
		}
		subject = email.Render(template.Subject, template.Variables, req.Variables)
		body = email.Render(template.Body, template.Variables, req.Variables)
	}

	if subject == "" || body == "" {
		return false, fmt.Errorf("%w: subject and body are required when no template is named", ErrValidation)
	}

	if err := s.sender.Send(req.To, subject, body); err != nil {
		log.Printf("EmailTemplateService: error sending email to %s: %v", req.To, err)
		return false, fmt.Errorf("internal error sending email: %w", err)
	}
	return true, nil
}
