package routes

import (
	"github.com/gin-gonic/gin"

	"hr-dashboard/internal/api/handlers"
	"hr-dashboard/internal/api/middleware"
	"hr-dashboard/internal/auth"
)

// RegisterCandidateRoutes registers all routes related to candidates
func RegisterCandidateRoutes(rg *gin.RouterGroup, candidateHandler *handlers.CandidateHandler, authMiddleware gin.HandlerFunc) {
	candidates := rg.Group("/candidates")
	candidates.Use(authMiddleware)
	{
		candidates.GET("", middleware.RequireAccess(auth.ResourceCandidates, auth.ActionRead), candidateHandler.GetCandidates)
		candidates.GET("/:id", middleware.RequireAccess(auth.ResourceCandidates, auth.ActionRead), candidateHandler.GetCandidateByID)
		candidates.POST("", middleware.RequireAccess(auth.ResourceCandidates, auth.ActionCreate), candidateHandler.CreateCandidate)
		candidates.PUT("/:id", middleware.RequireAccess(auth.ResourceCandidates, auth.ActionUpdate), candidateHandler.UpdateCandidate)
		candidates.DELETE("/:id", middleware.RequireAccess(auth.ResourceCandidates, auth.ActionDelete), candidateHandler.DeleteCandidate)
	}
}
