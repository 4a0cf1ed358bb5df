package routes

import (
	"github.com/gin-gonic/gin"

	"hr-dashboard/internal/api/handlers"
	"hr-dashboard/internal/api/middleware"
	"hr-dashboard/internal/auth"
)

// RegisterEmailRoutes registers template management and the send-email route
func RegisterEmailRoutes(rg *gin.RouterGroup, emailTemplateHandler *handlers.EmailTemplateHandler, authMiddleware gin.HandlerFunc) {
	templates := rg.Group("/email-templates")
	templates.Use(authMiddleware)
	{
		templates.GET("", middleware.RequireAccess(auth.ResourceEmailTemplates, auth.ActionRead), emailTemplateHandler.GetEmailTemplates)
		templates.GET("/:id", middleware.RequireAccess(auth.ResourceEmailTemplates, auth.ActionRead), emailTemplateHandler.GetEmailTemplateByID)
		templates.POST("", middleware.RequireAccess(auth.ResourceEmailTemplates, auth.ActionManage), emailTemplateHandler.CreateEmailTemplate)
		templates.PUT("/:id", middleware.RequireAccess(auth.ResourceEmailTemplates, auth.ActionManage), emailTemplateHandler.UpdateEmailTemplate)
		templates.DELETE("/:id", middleware.RequireAccess(auth.ResourceEmailTemplates, auth.ActionManage), emailTemplateHandler.DeleteEmailTemplate)
	}

	// hr_staff may send emails but not manage templates.
	rg.POST("/send-email", authMiddleware, middleware.RequireAccess(auth.ResourceEmail, auth.ActionSend), emailTemplateHandler.SendEmail)
}
