package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestLogger_UsesRoutePatternForMatchedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLog(t)

	router := gin.New()
	router.Use(Logger())
	router.GET("/api/jobs/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/jobs/e4c7", nil)
	router.ServeHTTP(w, req)

	assert.Contains(t, buf.String(), "GET /api/jobs/:id")
	assert.Contains(t, buf.String(), "status=200")
}

func TestLogger_FallsBackToRawPathWhenUnmatched(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLog(t)

	router := gin.New()
	router.Use(Logger())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/no/such/route", nil)
	router.ServeHTTP(w, req)

	assert.Contains(t, buf.String(), "GET /no/such/route")
	assert.Contains(t, buf.String(), "status=404")
}
