package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neuroclinic/config"
	deliveryHttp "neuroclinic/internal/delivery/http"
	"neuroclinic/internal/delivery/http/handler"
	"neuroclinic/internal/delivery/http/middleware"
	"neuroclinic/internal/infrastructure/cache"
	"neuroclinic/internal/infrastructure/database"
	"neuroclinic/internal/observability/metrics"
	"neuroclinic/internal/querycache"
	"neuroclinic/internal/repository"
	"neuroclinic/internal/service"
	"neuroclinic/internal/usecase"
	"neuroclinic/pkg/jwt"
	"neuroclinic/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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
	logrus.WithField("mode", cfg.App.Mode).Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize the list cache store
	var store querycache.Store
	switch cfg.Cache.Driver {
	case "redis":
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		store = querycache.NewRedisStore(redisClient)
		logrus.Info("Redis connected successfully")
	default:
		store = querycache.NewMemoryStore(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, db, store)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, store querycache.Store) *http.Server {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	cacheMetrics := metrics.NewCacheMetrics(registry)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	recordStore := repository.NewRecordStore(db)
	identityProvider := repository.NewIdentityProvider(db)

	// Initialize services
	listCache := querycache.New(store, querycache.Options{TTL: cfg.Cache.TTL, Prefix: cfg.Cache.Prefix}, log, cacheMetrics)
	notificationService := service.NewNotificationService(log)

	deps := usecase.Dependencies{
		Store:    recordStore,
		Cache:    listCache,
		Notifier: notificationService,
		Log:      log,
	}

	// Initialize usecases
	referenceUsecase := usecase.NewReferenceUsecase(deps)
	patientUsecase := usecase.NewPatientUsecase(deps, referenceUsecase)
	professionalUsecase := usecase.NewProfessionalUsecase(deps, identityProvider)
	appointmentUsecase := usecase.NewAppointmentUsecase(deps, referenceUsecase)
	accountUsecase := usecase.NewAccountUsecase(deps, referenceUsecase)
	dashboardUsecase := usecase.NewDashboardUsecase(deps)

	forms := usecase.Registry{
		"patients":      patientUsecase,
		"professionals": professionalUsecase,
		"appointments":  appointmentUsecase,
		"accounts":      accountUsecase,
	}

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(cfg.App.Mode)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	professionalHandler := handler.NewEntityHandler(professionalUsecase, customValidator)
	appointmentHandler := handler.NewEntityHandler(appointmentUsecase, customValidator)
	accountHandler := handler.NewAccountHandler(accountUsecase, customValidator)
	referenceHandler := handler.NewReferenceHandler(referenceUsecase)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)
	formHandler := handler.NewFormHandler(forms, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, cfg.App.Mode)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins...)
	metricsMiddleware := middleware.NewMetricsMiddleware(httpMetrics)

	// Initialize router
	router := deliveryHttp.NewRouter(
		sessionHandler,
		patientHandler,
		professionalHandler,
		appointmentHandler,
		accountHandler,
		referenceHandler,
		dashboardHandler,
		formHandler,
		authMiddleware,
		corsMiddleware,
		metricsMiddleware,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s, mode: %s", app.Config.App.Env, app.Config.App.Mode)
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

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
