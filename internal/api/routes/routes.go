package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hr-dashboard/internal/api/handlers"
	"hr-dashboard/internal/api/middleware"
	"hr-dashboard/internal/app"
)

// RegisterRoutes sets up the API routes by calling resource-specific
// registration functions. When the application has no database connection only
// the health endpoint is registered.
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Health Check ---
	healthHandler := handlers.NewHealthHandler(app.DB)
	router.GET("/api/health", healthHandler.HealthCheck)

	if app.DB == nil {
		log.Println("No database connection; running in degraded mode with only the health endpoint")
		return
	}

	// --- Base API Group ---
	api := router.Group("/api")

	//Create handlers
	authHandler := handlers.NewAuthHandler(app.AuthService, app.Validator)
	userHandler := handlers.NewUserHandler(app.UserService, app.Validator)
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	candidateHandler := handlers.NewCandidateHandler(app.CandidateService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(app.ApplicationService, app.Validator)
	interviewHandler := handlers.NewInterviewHandler(app.InterviewService, app.Validator)
	emailTemplateHandler := handlers.NewEmailTemplateHandler(app.EmailTemplateService, app.Validator)
	reportsHandler := handlers.NewReportsHandler(app.ReportsService)
	uploadHandler := handlers.NewUploadHandler(app.Config.Upload)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(api, authHandler)
	RegisterUserRoutes(api, userHandler, authMiddleware)
	RegisterJobRoutes(api, jobHandler, authMiddleware)
	RegisterCandidateRoutes(api, candidateHandler, authMiddleware)
	RegisterApplicationRoutes(api, applicationHandler, authMiddleware)
	RegisterInterviewRoutes(api, interviewHandler, authMiddleware)
	RegisterEmailRoutes(api, emailTemplateHandler, authMiddleware)
	RegisterReportRoutes(api, reportsHandler, authMiddleware)

	// --- Uploads ---
	api.POST("/upload", authMiddleware, uploadHandler.Upload)
	router.Static("/uploads", app.Config.Upload.Dir)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
