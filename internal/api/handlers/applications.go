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

// ApplicationHandler holds the service dependency for application operations
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler with the given service
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{service: service, validator: validate}
}

// GetApplications godoc
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Param        status      query     string  false  "Exact status ('all' disables the filter)"
// @Param        jobId       query     string  false  "Filter by job"
// @Param        candidateId query     string  false  "Filter by candidate"
// @Success      200  {array}   models.Application "Successfully retrieved applications"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /applications [get]
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	var filter dto.ApplicationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	applications, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		log.Printf("Error fetching applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}
	c.JSON(http.StatusOK, applications)
}

// GetApplicationByID godoc
// @Summary      Get an application by ID
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID" Format(uuid)
// @Success      200  {object}  models.Application "Successfully retrieved application"
// @Failure      404  {object}  map[string]string "Application Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	application, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			log.Printf("Error fetching application by ID %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application"})
		}
		return
	}
	c.JSON(http.StatusOK, application)
}

// CreateApplication godoc
// @Summary      Create a new application
// @Description  Records a candidate's application to a job and increments the job's application counter atomically.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application body      dto.CreateApplicationRequest true "Application to create"
// @Success      201  {object}  models.Application "Application created successfully"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string "Referenced job or candidate not found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /applications [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	application, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error creating application: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		}
		return
	}
	c.JSON(http.StatusCreated, application)
}

// UpdateApplication godoc
// @Summary      Update an existing application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id          path      string                       true "Application ID" Format(uuid)
// @Param        application body      dto.UpdateApplicationRequest true "Fields to update"
// @Success      200  {object}  models.Application "Application updated successfully"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string "Application Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /applications/{id} [put]
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	application, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			log.Printf("Error updating application %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		}
		return
	}
	c.JSON(http.StatusOK, application)
}

// DeleteApplication godoc
// @Summary      Delete an application
// @Description  Removes an application. The parent job's application counter is not decremented.
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID" Format(uuid)
// @Success      204  {object}  nil "Application deleted successfully"
// @Failure      404  {object}  map[string]string "Application Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			log.Printf("Error deleting application %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
