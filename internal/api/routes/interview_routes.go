package routes

import (
	"github.com/gin-gonic/gin"

	"hr-dashboard/internal/api/handlers"
	"hr-dashboard/internal/api/middleware"
	"hr-dashboard/internal/auth"
)

// RegisterInterviewRoutes registers all routes related to interviews
func RegisterInterviewRoutes(rg *gin.RouterGroup, interviewHandler *handlers.InterviewHandler, authMiddleware gin.HandlerFunc) {
	interviews := rg.Group("/interviews")
	interviews.Use(authMiddleware)
	{
		interviews.GET("", middleware.RequireAccess(auth.ResourceInterviews, auth.ActionRead), interviewHandler.GetInterviews)
		interviews.GET("/:id", middleware.RequireAccess(auth.ResourceInterviews, auth.ActionRead), interviewHandler.GetInterviewByID)
		interviews.POST("", middleware.RequireAccess(auth.ResourceInterviews, auth.ActionCreate), interviewHandler.CreateInterview)
		interviews.PUT("/:id", middleware.RequireAccess(auth.ResourceInterviews, auth.ActionUpdate), interviewHandler.UpdateInterview)
		interviews.DELETE("/:id", middleware.RequireAccess(auth.ResourceInterviews, auth.ActionDelete), interviewHandler.DeleteInterview)
	}
}
