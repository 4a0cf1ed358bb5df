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

// InterviewHandler holds the service dependency for interview operations
type InterviewHandler struct {
	service   services.InterviewService
	validator *validator.Validate
}

// NewInterviewHandler creates a new InterviewHandler with the given service
func NewInterviewHandler(service services.InterviewService, validate *validator.Validate) *InterviewHandler {
	return &InterviewHandler{service: service, validator: validate}
}

// GetInterviews godoc
// @Summary      List interviews
// @Tags         interviews
// @Produce      json
// @Param        status      query     string  false  "Exact status ('all' disables the filter)"
// @Param        type        query     string  false  "Exact type ('all' disables the filter)"
// @Param        candidateId query     string  false  "Filter by candidate"
// @Param        jobId       query     string  false  "Filter by job"
// @Success      200  {array}   models.Interview "Successfully retrieved interviews"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /interviews [get]
func (h *InterviewHandler) GetInterviews(c *gin.Context) {
	var filter dto.InterviewListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	interviews, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		log.Printf("Error fetching interviews: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve interviews"})
		return
	}
	c.JSON(http.StatusOK, interviews)
}

// GetInterviewByID godoc
// @Summary      Get an interview by ID
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Interview ID" Format(uuid)
// @Success      200  {object}  models.Interview "Successfully retrieved interview"
// @Failure      404  {object}  map[string]string "Interview Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /interviews/{id} [get]
func (h *InterviewHandler) GetInterviewByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	interview, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found"})
		} else {
			log.Printf("Error fetching interview by ID %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve interview"})
		}
		return
	}
	c.JSON(http.StatusOK, interview)
}

// CreateInterview godoc
// @Summary      Schedule a new interview
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview body      dto.CreateInterviewRequest true "Interview to schedule"
// @Success      201  {object}  models.Interview "Interview scheduled successfully"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /interviews [post]
func (h *InterviewHandler) CreateInterview(c *gin.Context) {
	var req dto.CreateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	interview, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating interview: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create interview"})
		return
	}
	c.JSON(http.StatusCreated, interview)
}

// UpdateInterview godoc
// @Summary      Update an existing interview
// @Description  Reschedules, scores, or otherwise amends an interview.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        id        path      string                     true "Interview ID" Format(uuid)
// @Param        interview body      dto.UpdateInterviewRequest true "Fields to update"
// @Success      200  {object}  models.Interview "Interview updated successfully"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string "Interview Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /interviews/{id} [put]
func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	interview, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found"})
		} else {
			log.Printf("Error updating interview %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update interview"})
		}
		return
	}
	c.JSON(http.StatusOK, interview)
}

// DeleteInterview godoc
// @Summary      Delete an interview
// @Tags         interviews
// @Produce      json
// @Param        id   path      string  true  "Interview ID" Format(uuid)
// @Success      204  {object}  nil "Interview deleted successfully"
// @Failure      404  {object}  map[string]string "Interview Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /interviews/{id} [delete]
func (h *InterviewHandler) DeleteInterview(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found"})
		} else {
			log.Printf("Error deleting interview %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete interview"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
