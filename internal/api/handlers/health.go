package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler reports process liveness and database connectivity. The db
// handle may be nil when the server runs in degraded mode without a database.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new HealthHandler with the given database handle
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck godoc
// @Summary      Health check
// @Description  Reports whether the service is up and whether the database is reachable. Never fails outright.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string "Service health"
// @Router       /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	database := "disconnected"
	if h.db != nil {
		if sqlDB, err := h.db.DB(); err == nil {
			if err := sqlDB.PingContext(c.Request.Context()); err == nil {
				database = "connected"
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
		"database":  database,
	})
}
