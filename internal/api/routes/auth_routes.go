package routes

import (
	"github.com/gin-gonic/gin"

	"hr-dashboard/internal/api/handlers"
)

// RegisterAuthRoutes registers the public authentication routes
func RegisterAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}
}
