package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/resumevault/resume-vault/src/config"
	"github.com/resumevault/resume-vault/src/database"
	"github.com/resumevault/resume-vault/src/handlers"
	"github.com/resumevault/resume-vault/src/logging"
	"github.com/resumevault/resume-vault/src/middleware"
	"github.com/resumevault/resume-vault/src/repositories"
	"github.com/resumevault/resume-vault/src/services"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL())
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	// Initialize repositories and services
	adminRepo := repositories.NewPostgresAdminRepository(db.GetPool())
	sessionRepo := repositories.NewPostgresSessionRepository(db.GetPool())
	resumeRepo := repositories.NewPostgresResumeRepository(db.GetPool())

	sessionService := services.NewSessionService(adminRepo, sessionRepo, cfg.SessionExpiryHours)
	resumeService := services.NewResumeService(resumeRepo)
	cleanupService := services.NewCleanupService(sessionRepo)

	// Sweep sessions that expired while the server was down
	if deleted, err := sessionService.SweepExpired(context.Background()); err != nil {
		log.Error().Err(err).Msg("startup session sweep failed")
	} else if deleted > 0 {
		log.Info().Int64("deleted", deleted).Msg("swept expired sessions on startup")
	}

	// Start background services
	cleanupService.Start(context.Background())

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	setupRoutes(router, sessionService, resumeService, cfg)

	// Create HTTP server with timeouts
	srv := &http.Server{
		Addr:              ":" + formatPort(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	cleanupService.Stop()

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func setupRoutes(router *gin.Engine, sessionService *services.SessionService, resumeService *services.ResumeService, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(sessionService, cfg.SessionExpiryHours)
	resumeHandler := handlers.NewResumeHandler(resumeService, config.MaxResumeSize)

	adminAuth := middleware.AdminAuth(sessionService)

	api := router.Group("/api")

	api.GET("/health", handlers.HandleHealth)

	// Admin authentication
	api.POST("/admin/login", middleware.LoginRateLimitMiddleware(), authHandler.HandleLogin)
	api.POST("/admin/logout", adminAuth, authHandler.HandleLogout)

	// Public submission
	api.POST("/resumes", middleware.SubmissionRateLimitMiddleware(), resumeHandler.HandleSubmit)

	// Public PDF download; the unguessable resume id gates access
	api.GET("/resumes/:id/pdf", resumeHandler.HandlePDF)

	// Admin resume management
	api.GET("/admin/resumes", adminAuth, resumeHandler.HandleList)
	api.GET("/admin/resumes/:id", adminAuth, resumeHandler.HandleGet)
	api.GET("/admin/resumes/:id/pdf", adminAuth, resumeHandler.HandlePDF)
	api.DELETE("/admin/resumes/:id", adminAuth, resumeHandler.HandleDelete)
}

func formatPort(port int) string {
	return fmt.Sprintf("%d", port)
}
