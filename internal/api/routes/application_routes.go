package routes

import (
	"github.com/gin-gonic/gin"

	"hr-dashboard/internal/api/handlers"
	"hr-dashboard/internal/api/middleware"
	"hr-dashboard/internal/auth"
)

// RegisterApplicationRoutes registers all routes related to applications
func RegisterApplicationRoutes(rg *gin.RouterGroup, applicationHandler *handlers.ApplicationHandler, authMiddleware gin.HandlerFunc) {
	applications := rg.Group("/applications")
	applications.Use(authMiddleware)
	{
		applications.GET("", middleware.RequireAccess(auth.ResourceApplications, auth.ActionRead), applicationHandler.GetApplications)
		applications.GET("/:id", middleware.RequireAccess(auth.ResourceApplications, auth.ActionRead), applicationHandler.GetApplicationByID)
		applications.POST("", middleware.RequireAccess(auth.ResourceApplications, auth.ActionCreate), applicationHandler.CreateApplication)
		applications.PUT("/:id", middleware.RequireAccess(auth.ResourceApplications, auth.ActionUpdate), applicationHandler.UpdateApplication)
		applications.DELETE("/:id", middleware.RequireAccess(auth.ResourceApplications, auth.ActionDelete), applicationHandler.DeleteApplication)
	}
}
