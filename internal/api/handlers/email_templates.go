package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hr-dashboard/internal/services"
	"hr-dashboard/internal/transport/dto"
)

// EmailTemplateHandler holds the service dependency for template operations
// and outbound email sends.
type EmailTemplateHandler struct {
	service   services.EmailTemplateService
	validator *validator.Validate
}

// NewEmailTemplateHandler creates a new EmailTemplateHandler with the given service
func NewEmailTemplateHandler(service services.EmailTemplateService, validate *validator.Validate) *EmailTemplateHandler {
	return &EmailTemplateHandler{service: service, validator: validate}
}

// GetEmailTemplates godoc
// @Summary      List email templates
// @Tags         email-templates
// @Produce      json
// @Success      200  {array}   models.EmailTemplate "Successfully retrieved templates"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /email-templates [get]
func (h *EmailTemplateHandler) GetEmailTemplates(c *gin.Context) {
	templates, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching email templates: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve email templates"})
		return
	}
	c.JSON(http.StatusOK, templates)
}

// GetEmailTemplateByID godoc
// @Summary      Get an email template by ID
// @Tags         email-templates
// @Produce      json
// @Param        id   path      string  true  "Template ID" Format(uuid)
// @Success      200  {object}  models.EmailTemplate "Successfully retrieved template"
// @Failure      404  {object}  map[string]string "Template Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /email-templates/{id} [get]
func (h *EmailTemplateHandler) GetEmailTemplateByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	template, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email template not found"})
		} else {
			log.Printf("Error fetching email template by ID %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve email template"})
		}
		return
	}
	c.JSON(http.StatusOK, template)
}

// CreateEmailTemplate godoc
// @Summary      Create a new email template
// @Tags         email-templates
// @Accept       json
// @Produce      json
// @Param        template body      dto.CreateEmailTemplateRequest true "Template to create"
// @Success      201  {object}  models.EmailTemplate "Template created successfully"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      409  {object}  map[string]string "Conflict - template name already in use"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /email-templates [post]
func (h *EmailTemplateHandler) CreateEmailTemplate(c *gin.Context) {
	var req dto.CreateEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	template, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email template with this name already exists"})
		} else {
			log.Printf("Error creating email template: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create email template"})
		}
		return
	}
	c.JSON(http.StatusCreated, template)
}

// UpdateEmailTemplate godoc
// @Summary      Update an existing email template
// @Tags         email-templates
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true "Template ID" Format(uuid)
// @Param        template body      dto.UpdateEmailTemplateRequest true "Fields to update"
// @Success      200  {object}  models.EmailTemplate "Template updated successfully"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string "Template Not Found"
// @Failure      409  {object}  map[string]string "Conflict - template name already in use"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /email-templates/{id} [put]
func (h *EmailTemplateHandler) UpdateEmailTemplate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateEmailTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	template, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email template not found"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email template with this name already exists"})
		} else {
			log.Printf("Error updating email template %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update email template"})
		}
		return
	}
	c.JSON(http.StatusOK, template)
}

// DeleteEmailTemplate godoc
// @Summary      Delete an email template
// @Tags         email-templates
// @Produce      json
// @Param        id   path      string  true  "Template ID" Format(uuid)
// @Success      204  {object}  nil "Template deleted successfully"
// @Failure      404  {object}  map[string]string "Template Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /email-templates/{id} [delete]
func (h *EmailTemplateHandler) DeleteEmailTemplate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email template not found"})
		} else {
			log.Printf("Error deleting email template %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete email template"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// SendEmail godoc
// @Summary      Send an email
// @Description  Sends an email built from a stored template with variable substitution, or from a raw subject and body.
// @Tags         email
// @Accept       json
// @Produce      json
// @Param        email body      dto.SendEmailRequest true "Email to send"
// @Success      200  {object}  dto.SendEmailResponse "Email sent"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string "Template Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /send-email [post]
func (h *EmailTemplateHandler) SendEmail(c *gin.Context) {
	var req dto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	success, err := h.service.Send(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error sending email: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SendEmailResponse{Success: success})
}
