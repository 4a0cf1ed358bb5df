package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"hr-dashboard/config"
	"hr-dashboard/internal/app"
	"hr-dashboard/internal/database"
	"hr-dashboard/internal/email"
	"hr-dashboard/internal/server"
	"hr-dashboard/internal/services"
	"hr-dashboard/internal/storage/postgres"
)

// @title           HR Dashboard API
// @version         1.0
// @description     Authorization and reporting backend for the HR dashboard: accounts, job postings, candidates, applications, interviews, email templates and hiring reports.

// @host      localhost:3002
// @BasePath  /api
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The server keeps running without a database so the health endpoint can
	// report the degraded state instead of the process crashing.
	var db *gorm.DB
	if cfg.DB.URL == "" {
		log.Println("WARN: DATABASE_URL not set, starting in degraded mode")
	} else {
		db, err = database.Connect(cfg.DB.URL)
		if err != nil {
			log.Printf("WARN: Failed to connect to database: %v. Starting in degraded mode.", err)
			db = nil
		} else if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
	}

	var sender email.Sender = email.NoopSender{}
	if cfg.SMTP.Host != "" {
		sender = email.NewSMTPSender(cfg.SMTP)
	} else {
		log.Println("SMTP host not configured, outbound email is disabled")
	}

	validate := validator.New()

	application := &app.Application{
		Config:    cfg,
		DB:        db,
		Validator: validate,
	}

	if db != nil {
		userRepo := postgres.NewUserRepo(db)
		jobRepo := postgres.NewJobRepo(db)
		candidateRepo := postgres.NewCandidateRepo(db)
		applicationRepo := postgres.NewApplicationRepo(db)
		interviewRepo := postgres.NewInterviewRepo(db)
		emailTemplateRepo := postgres.NewEmailTemplateRepo(db)
		reportsRepo := postgres.NewReportsRepo(db)

		application.AuthService = services.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
		application.UserService = services.NewUserService(userRepo)
		application.JobService = services.NewJobService(jobRepo, userRepo, sender)
		application.CandidateService = services.NewCandidateService(candidateRepo)
		application.ApplicationService = services.NewApplicationService(applicationRepo, candidateRepo)
		application.InterviewService = services.NewInterviewService(interviewRepo)
		application.EmailTemplateService = services.NewEmailTemplateService(emailTemplateRepo, sender)
		application.ReportsService = services.NewReportsService(reportsRepo)
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	log.Println("Application gracefully stopped.")
}
