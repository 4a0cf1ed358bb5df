package routes

import (
	"github.com/gin-gonic/gin"

	"hr-dashboard/internal/api/handlers"
	"hr-dashboard/internal/api/middleware"
	"hr-dashboard/internal/auth"
)

// RegisterJobRoutes registers all routes related to job postings
func RegisterJobRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, authMiddleware gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	jobs.Use(authMiddleware)
	{
		jobs.GET("", middleware.RequireAccess(auth.ResourceJobs, auth.ActionRead), jobHandler.GetJobs)
		jobs.GET("/:id", middleware.RequireAccess(auth.ResourceJobs, auth.ActionRead), jobHandler.GetJobByID)
		jobs.POST("", middleware.RequireAccess(auth.ResourceJobs, auth.ActionCreate), jobHandler.CreateJob)
		jobs.PUT("/:id", middleware.RequireAccess(auth.ResourceJobs, auth.ActionUpdate), jobHandler.UpdateJob)
		jobs.DELETE("/:id", middleware.RequireAccess(auth.ResourceJobs, auth.ActionDelete), jobHandler.DeleteJob)
	}
}
