package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medical-appointments-api/config"
	deliveryHttp "medical-appointments-api/internal/delivery/http"
	"medical-appointments-api/internal/delivery/http/handler"
	"medical-appointments-api/internal/delivery/http/middleware"
	"medical-appointments-api/internal/infrastructure/cache"
	"medical-appointments-api/internal/infrastructure/database"
	"medical-appointments-api/internal/repository"
	"medical-appointments-api/internal/service"
	"medical-appointments-api/internal/usecase"
	"medical-appointments-api/pkg/jwt"
	"medical-appointments-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	AuthUsecase usecase.AuthUsecase
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.initialize()

	return app, nil
}

// SetupLogger configures the standard logrus logger from config
func SetupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if cfg.Debug {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	return log
}

// initialize wires repositories, usecases, handlers and the HTTP server
func (app *App) initialize() {
	cfg := app.Config
	log := logrus.StandardLogger()

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	transactor := database.NewTransactor(app.DB)

	// Initialize repositories
	accountRepo := repository.NewAccountRepository()
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	specialtyRepo := repository.NewSpecialtyRepository()
	scheduleRepo := repository.NewScheduleRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	recordRepo := repository.NewClinicalRecordRepository()
	invoiceRepo := repository.NewInvoiceRepository()
	paymentMethodRepo := repository.NewPaymentMethodRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	sessions := service.NewRedisSessionStore(app.RedisClient, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, transactor, accountRepo, auditService, sessions, jwtService)
	patientUsecase := usecase.NewPatientUsecase(log, transactor, patientRepo, accountRepo, auditService, sessions, cfg.Pagination)
	doctorUsecase := usecase.NewDoctorUsecase(log, transactor, doctorRepo, specialtyRepo, accountRepo, auditService, sessions, cfg.Pagination)
	scheduleUsecase := usecase.NewScheduleUsecase(log, transactor, scheduleRepo, doctorRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, transactor, appointmentRepo, patientRepo, doctorRepo, auditService, cfg.Appointment, cfg.Pagination)
	recordUsecase := usecase.NewClinicalRecordUsecase(log, transactor, recordRepo, patientRepo, doctorRepo, appointmentRepo, auditService)
	invoiceUsecase := usecase.NewInvoiceUsecase(log, transactor, invoiceRepo, appointmentRepo, paymentMethodRepo, auditService, cfg.Pagination)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, transactor, auditLogRepo, cfg.Pagination)
	app.AuthUsecase = authUsecase

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	recordHandler := handler.NewClinicalRecordHandler(recordUsecase, customValidator)
	invoiceHandler := handler.NewInvoiceHandler(invoiceUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		doctorHandler,
		scheduleHandler,
		appointmentHandler,
		recordHandler,
		invoiceHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)

	app.Server = &http.Server{
		Addr:              cfg.Address(),
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and blocks until it is shut down
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Server starting on %s", app.Server.Addr)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	return app.waitForShutdown(errCh)
}

// waitForShutdown blocks until an interrupt signal is received or the server fails
func (app *App) waitForShutdown(errCh <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
