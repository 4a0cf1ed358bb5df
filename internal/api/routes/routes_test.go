package routes_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"hr-dashboard/config"
	"hr-dashboard/internal/api/routes"
	"hr-dashboard/internal/app"
)

func testApp(db *gorm.DB) *app.Application {
	return &app.Application{
		Config: &config.Config{
			JWT:    config.JWTConfig{Secret: "test-secret"},
			Upload: config.UploadConfig{Dir: "uploads"},
		},
		DB:        db,
		Validator: validator.New(),
	}
}

func registeredPaths(router *gin.Engine) map[string]bool {
	paths := make(map[string]bool)
	for _, r := range router.Routes() {
		paths[r.Method+" "+r.Path] = true
	}
	return paths
}

func TestRegisterRoutes_DegradedModeOnlyHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	routes.RegisterRoutes(router, testApp(nil))

	paths := registeredPaths(router)
	assert.True(t, paths["GET /api/health"])
	assert.False(t, paths["POST /api/auth/login"])
	assert.False(t, paths["GET /api/jobs"])
}

func TestRegisterRoutes_FullSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Route registration needs a handle, not a live connection.
	routes.RegisterRoutes(router, testApp(&gorm.DB{}))

	expected := []string{
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/users",
		http.MethodGet + " /api/users/:id",
		http.MethodPut + " /api/users/:id",
		http.MethodDelete + " /api/users/:id",
		http.MethodGet + " /api/jobs",
		http.MethodPost + " /api/jobs",
		http.MethodGet + " /api/jobs/:id",
		http.MethodPut + " /api/jobs/:id",
		http.MethodDelete + " /api/jobs/:id",
		http.MethodGet + " /api/candidates",
		http.MethodPost + " /api/candidates",
		http.MethodGet + " /api/applications",
		http.MethodPost + " /api/applications",
		http.MethodGet + " /api/interviews",
		http.MethodPost + " /api/interviews",
		http.MethodGet + " /api/email-templates",
		http.MethodPost + " /api/email-templates",
		http.MethodPost + " /api/send-email",
		http.MethodGet + " /api/dashboard/stats",
		http.MethodGet + " /api/reports/hiring-metrics",
		http.MethodGet + " /api/reports/candidate-pipeline",
		http.MethodPost + " /api/upload",
		http.MethodGet + " /api/health",
	}

	paths := registeredPaths(router)
	for _, route := range expected {
		assert.True(t, paths[route], "expected route %s to be registered", route)
	}
}
