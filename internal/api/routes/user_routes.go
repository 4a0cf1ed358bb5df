package routes

import (
	"github.com/gin-gonic/gin"

	"hr-dashboard/internal/api/handlers"
	"hr-dashboard/internal/api/middleware"
	"hr-dashboard/internal/auth"
)

// RegisterUserRoutes registers all routes related to user accounts
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler, authMiddleware gin.HandlerFunc) {
	users := rg.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("", middleware.RequireAccess(auth.ResourceUsers, auth.ActionRead), userHandler.GetUsers)
		users.GET("/:id", middleware.RequireAccess(auth.ResourceUsers, auth.ActionRead), userHandler.GetUserByID)
		users.PUT("/:id", middleware.RequireAccess(auth.ResourceUsers, auth.ActionManage), userHandler.UpdateUser)
		users.DELETE("/:id", middleware.RequireAccess(auth.ResourceUsers, auth.ActionDelete), userHandler.DeleteUser)
	}
}
