package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-dashboard/internal/services"
	"hr-dashboard/internal/transport/dto"
)

// ReportsHandler holds the service dependency for dashboard and hiring reports
type ReportsHandler struct {
	service services.ReportsService
}

// NewReportsHandler creates a new ReportsHandler with the given service
func NewReportsHandler(service services.ReportsService) *ReportsHandler {
	return &ReportsHandler{service: service}
}

// GetDashboardStats godoc
// @Summary      Dashboard statistics
// @Description  Returns the landing-page summary: counts, top departments and recent applications. Computed fresh on every call.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardStats "Dashboard statistics"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /dashboard/stats [get]
func (h *ReportsHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context())
	if err != nil {
		log.Printf("Error computing dashboard stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetHiringMetrics godoc
// @Summary      Hiring metrics
// @Description  Returns application totals, per-status and per-department counts, and average time to hire, bounded by an optional inclusive date range.
// @Tags         reports
// @Produce      json
// @Param        startDate query     string  false  "Inclusive lower bound (YYYY-MM-DD)"
// @Param        endDate   query     string  false  "Inclusive upper bound (YYYY-MM-DD)"
// @Success      200  {object}  dto.HiringMetrics "Hiring metrics"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /reports/hiring-metrics [get]
func (h *ReportsHandler) GetHiringMetrics(c *gin.Context) {
	var filter dto.HiringMetricsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	metrics, err := h.service.HiringMetrics(c.Request.Context(), &filter)
	if err != nil {
		log.Printf("Error computing hiring metrics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute hiring metrics"})
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// GetCandidatePipeline godoc
// @Summary      Candidate pipeline
// @Description  Returns all applications grouped by status, each bucket carrying candidate and job details.
// @Tags         reports
// @Produce      json
// @Success      200  {array}   dto.PipelineBucket "Pipeline buckets"
// @Failure      500  {object}  map[string]string "Internal Server Error"
// @Security     BearerAuth
// @Router       /reports/candidate-pipeline [get]
func (h *ReportsHandler) GetCandidatePipeline(c *gin.Context) {
	pipeline, err := h.service.CandidatePipeline(c.Request.Context())
	if err != nil {
		log.Printf("Error computing candidate pipeline: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute candidate pipeline"})
		return
	}
	c.JSON(http.StatusOK, pipeline)
}
