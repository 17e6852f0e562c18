package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-portal-api/config"
	deliveryHttp "doctor-portal-api/internal/delivery/http"
	"doctor-portal-api/internal/delivery/http/handler"
	"doctor-portal-api/internal/delivery/http/middleware"
	"doctor-portal-api/internal/infrastructure/cache"
	"doctor-portal-api/internal/infrastructure/database"
	"doctor-portal-api/internal/repository"
	"doctor-portal-api/internal/service"
	"doctor-portal-api/internal/usecase"
	"doctor-portal-api/pkg/jwt"
	"doctor-portal-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	userRoleRepo := repository.NewUserRoleRepository()
	doctorRepo := repository.NewDoctorRepository()
	doctorApprovalRepo := repository.NewDoctorApprovalRequestRepository()
	patientRepo := repository.NewPatientRepository()
	requestRepo := repository.NewPrescriptionRequestRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, userRoleRepo, doctorRepo, doctorApprovalRepo, auditService, jwtService, redisClient)
	listingUsecase := usecase.NewRequestListingUsecase(db, log, requestRepo, prescriptionRepo, patientRepo, userRepo, doctorRepo)
	decisionUsecase := usecase.NewRequestDecisionUsecase(db, log, doctorRepo, requestRepo, prescriptionRepo, auditService, redisClient)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, userRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, requestRepo, prescriptionRepo, redisClient)
	profileUsecase := usecase.NewDoctorProfileUsecase(db, log, doctorRepo, userRepo, auditService)
	adminUsecase := usecase.NewAdminUsecase(db, log, doctorApprovalRepo, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	requestHandler := handler.NewRequestHandler(listingUsecase, decisionUsecase)
	patientHandler := handler.NewPatientHandler(patientUsecase)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(adminUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App)

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, requestHandler, patientHandler, dashboardHandler, profileHandler, adminHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully; connections are closed by the caller
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
