package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/ojtportal/internal/app/controllers"
	appRoutes "github.com/yigit/ojtportal/internal/app/routes"
	appServices "github.com/yigit/ojtportal/internal/app/services"
	"github.com/yigit/ojtportal/internal/config"
	appMiddleware "github.com/yigit/ojtportal/internal/middleware"
	"github.com/yigit/ojtportal/internal/pkg/apiclient"
	"github.com/yigit/ojtportal/internal/pkg/logger"
	"github.com/yigit/ojtportal/internal/pkg/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	APIClient              *apiclient.Client
	Services               *appServices.Services
	AuthController         *appControllers.AuthController
	RegistrationController *appControllers.RegistrationController
	StudentController      *appControllers.StudentController
	SubmissionController   *appControllers.SubmissionController
	TimeLogController      *appControllers.TimeLogController
	DashboardController    *appControllers.DashboardController
	SessionMiddleware      *appMiddleware.SessionMiddleware
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupSessionBackend picks the session storage backend. The returned closer releases it.
func SetupSessionBackend(cfg *config.Config, lgr zerolog.Logger) (session.Backend, func() error, error) {
	if !strings.EqualFold(cfg.Session.Backend, config.BackendRedis) {
		lgr.Info().Msg("Using in-memory session storage")
		return session.NewMemoryBackend(), func() error { return nil }, nil
	}

	lgr.Info().Str("addr", cfg.Session.Redis.Addr).Msg("Connecting to Redis session storage...")
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Session.Redis.Addr,
		Password: cfg.Session.Redis.Password,
		DB:       cfg.Session.Redis.DB,
	})
	backend := session.NewRedisBackend(client, cfg.Session.Redis.Prefix, cfg.SessionTTL())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := backend.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping Redis")
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis session storage: %w", err)
	}
	lgr.Info().Msg("Redis session storage connected.")

	return backend, client.Close, nil
}

// BuildDependencies initializes the API client, services and controllers.
func BuildDependencies(cfg *config.Config, backend session.Backend, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	client, err := apiclient.New(apiclient.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.APITimeout(),
		UserAgent: cfg.API.UserAgent,
	}, apiclient.WithLogger(lgr))
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize OJT API client")
		return nil, fmt.Errorf("failed to initialize api client: %w", err)
	}
	deps.APIClient = client

	api := appServices.SessionAPI(client)
	deps.Services = &appServices.Services{
		Auth:         appServices.NewAuthService(lgr),
		Registration: appServices.NewRegistrationService(api, cfg.Session.LoginPath, lgr),
		Student:      appServices.NewStudentService(api, lgr),
		Submission:   appServices.NewSubmissionService(api, lgr),
		TimeLog:      appServices.NewTimeLogService(api, lgr),
		Dashboard:    appServices.NewDashboardService(api, lgr),
	}

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(backend, client, appMiddleware.SessionConfig{
		CookieName:   cfg.Server.CookieName,
		CookieDomain: cfg.Server.CookieDomain,
		CookieSecure: cfg.Server.CookieSecure,
		CookieMaxAge: int(cfg.SessionTTL().Seconds()),
		TokenKey:     cfg.Session.TokenKey,
		LoginPath:    cfg.Session.LoginPath,
	}, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.Services.Auth, lgr)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.Services.Registration, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.Services.Student, lgr)
	deps.SubmissionController = appControllers.NewSubmissionController(deps.Services.Submission, cfg.Server.MaxUploadBytes, lgr)
	deps.TimeLogController = appControllers.NewTimeLogController(deps.Services.TimeLog, lgr)
	deps.DashboardController = appControllers.NewDashboardController(deps.Services.Dashboard, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register validators")
		return nil, err
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), appMiddleware.Recovery(lgr))
	if cfg.Server.MaxUploadBytes > 0 {
		router.MaxMultipartMemory = cfg.Server.MaxUploadBytes
	}

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.RegistrationController,
		deps.StudentController,
		deps.SubmissionController,
		deps.TimeLogController,
		deps.DashboardController,
		deps.SessionMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}
