package routes

import (
	"github.com/gin-gonic/gin"

	"hr-dashboard/internal/api/handlers"
	"hr-dashboard/internal/api/middleware"
	"hr-dashboard/internal/auth"
)

// RegisterReportRoutes registers the dashboard and hiring report routes.
// Dashboard stats are visible to every authenticated role; the detailed
// reports are restricted by the policy table.
func RegisterReportRoutes(rg *gin.RouterGroup, reportsHandler *handlers.ReportsHandler, authMiddleware gin.HandlerFunc) {
	rg.GET("/dashboard/stats", authMiddleware, reportsHandler.GetDashboardStats)

	reports := rg.Group("/reports")
	reports.Use(authMiddleware, middleware.RequireAccess(auth.ResourceReports, auth.ActionRead))
	{
		reports.GET("/hiring-metrics", reportsHandler.GetHiringMetrics)
		reports.GET("/candidate-pipeline", reportsHandler.GetCandidatePipeline)
	}
}
