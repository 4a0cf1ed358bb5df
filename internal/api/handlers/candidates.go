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

// CandidateHandler holds the service dependency for candidate operations
type CandidateHandler struct {
	service   services.CandidateService
	validator *validator.Validate
}

// NewCandidateHandler creates a new CandidateHandler with the given service
func NewCandidateHandler(service services.CandidateService, validate *validator.Validate) *CandidateHandler {
	return &CandidateHandler{service: service, validator: validate}
}

// GetCandidates godoc
// @Summary      List candidates
// @Description  Retrieves candidates, optionally filtered by status, source and a name/email search.
// @Tags         candidates
// @Produce      json
// @Param        status query     string  false  "Exact status ('all' disables the filter)"
// @Param        source query     string  false  "Exact source ('all' disables the filter)"
// @Param        search query     string  false  "Case-insensitive substring match on name or email"
// @Success      200  {array}   models.Candidate "Successfully retrieved candidates"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /candidates [get]
func (h *CandidateHandler) GetCandidates(c *gin.Context) {
	var filter dto.CandidateListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	candidates, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		log.Printf("Error fetching candidates: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve candidates"})
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// GetCandidateByID godoc
// @Summary      Get a candidate by ID
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID" Format(uuid)
// @Success      200  {object}  models.Candidate "Successfully retrieved candidate"
// @Failure      404  {object}  map[string]string "Candidate Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetCandidateByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	candidate, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		} else {
			log.Printf("Error fetching candidate by ID %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve candidate"})
		}
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// CreateCandidate godoc
// @Summary      Create a new candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate body      dto.CreateCandidateRequest true "Candidate to create"
// @Success      201  {object}  models.Candidate "Candidate created successfully"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      409  {object}  map[string]string "Conflict - duplicate email"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /candidates [post]
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req dto.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	candidate, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Candidate with this email already exists"})
		} else {
			log.Printf("Error creating candidate: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create candidate"})
		}
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

// UpdateCandidate godoc
// @Summary      Update an existing candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id        path      string                     true "Candidate ID" Format(uuid)
// @Param        candidate body      dto.UpdateCandidateRequest true "Fields to update"
// @Success      200  {object}  models.Candidate "Candidate updated successfully"
// @Failure      400  {object}  map[string]string "Bad Request - Invalid input"
// @Failure      404  {object}  map[string]string "Candidate Not Found"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respondValidationError(c, err)
		return
	}

	candidate, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Update resulted in a conflict (e.g., duplicate email)"})
		} else {
			log.Printf("Error updating candidate %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update candidate"})
		}
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// DeleteCandidate godoc
// @Summary      Delete a candidate
// @Description  Removes a candidate. Candidates referenced by applications or interviews cannot be deleted.
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID" Format(uuid)
// @Success      204  {object}  nil "Candidate deleted successfully"
// @Failure      404  {object}  map[string]string "Candidate Not Found"
// @Failure      409  {object}  map[string]string "Conflict - candidate is referenced"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Candidate has applications or interviews and cannot be deleted"})
		} else {
			log.Printf("Error deleting candidate %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete candidate"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
