package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hr-dashboard/internal/api/middleware"
	"hr-dashboard/internal/services"
	"hr-dashboard/internal/transport/dto"
)

// JobHandler holds the service dependency for job posting operations
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler with the given service
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{service: service, validator: validate}
}

// GetJobs godoc
// @Summary      List job postings
// @Description  Retrieves job postings, optionally filtered by status, department, type and a title/description search.
// @Tags         jobs
// @Produce      json
// @Param        status     query     string  false  "Exact status ('all' disables the filter)"
// @Param        department query     string  false  "Exact department ('all' disables the filter)"
// @Param        type       query     string  false  "Exact employment type ('all' disables the filter)"
// @Param        search     query     string  false  "Case-insensitive substring match on title or description"
// @Success      200  {array}   models.Job "Successfully retrieved jobs"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /jobs [get]
func (h *JobHandler) GetJobs(c *gin.Context) {
	var filter dto.JobListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	jobs, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		log.Printf("Error fetching jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID" Format(uuid)
// @Success      200  {object}  models.Job "Successfully retrieved job"
// @Failure      404  {object}  map[string]string "Job Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	job, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("Error fetching job by ID %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary      Create a new job posting
// @Description  Creates a posting attributed to the caller and notifies the department's HR team by email.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true "Job posting to create"
// @Success      201  {object}  models.Job "Job created successfully"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	claims, err := middleware.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	job, err := h.service.Create(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		log.Printf("Error creating job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary      Update an existing job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id  path      string               true "Job ID" Format(uuid)
// @Param        job body      dto.UpdateJobRequest true "Fields to update"
// @Success      200  {object}  models.Job "Job updated successfully"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string "Job Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	job, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("Error updating job %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		}
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Description  Removes a posting. Postings that still have applications cannot be deleted.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID" Format(uuid)
// @Success      204  {object}  nil "Job deleted successfully"
// @Failure      404  {object}  map[string]string "Job Not Found"
// @Failure      409  {object}  map[string]string "Conflict - job has applications"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Job has applications and cannot be deleted"})
		} else {
			log.Printf("Error deleting job %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
