package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/Mikailhassan/bursary-aden/internal/app/controllers"
	appMigrations "github.com/Mikailhassan/bursary-aden/internal/app/migrations"
	appRepos "github.com/Mikailhassan/bursary-aden/internal/app/repositories"
	appRoutes "github.com/Mikailhassan/bursary-aden/internal/app/routes"
	appServices "github.com/Mikailhassan/bursary-aden/internal/app/services"
	"github.com/Mikailhassan/bursary-aden/internal/config"
	"github.com/Mikailhassan/bursary-aden/internal/db"
	appMiddleware "github.com/Mikailhassan/bursary-aden/internal/middleware"
	pkgAuth "github.com/Mikailhassan/bursary-aden/internal/pkg/auth"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/email"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/filestorage"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/helpers"
	"github.com/Mikailhassan/bursary-aden/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	ApplicantService    appServices.ApplicantService
	BursaryService      appServices.BursaryService
	AuthController      *appControllers.AuthController
	ApplicantController *appControllers.ApplicantController
	BursaryController   *appControllers.BursaryController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Notifier            *email.Notifier
	FileStorage         *filestorage.LocalStorage
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	// The base URL must match the static file serving path in the server
	fileStorageBaseURL := cfg.GetPublicBaseURL() + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	sender := email.NewSMTPSender(email.SMTPConfig{
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		Username:  cfg.Mail.Username,
		Password:  cfg.Mail.Password,
		FromName:  cfg.Mail.FromName,
		FromEmail: cfg.Mail.FromEmail,
		UseTLS:    cfg.Mail.UseTLS,
	}, lgr)
	deps.Notifier = email.NewNotifier(sender, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.ApplicantService = appServices.NewApplicantService(deps.Repos.ApplicantRepository, deps.FileStorage, deps.Notifier, lgr)
	deps.BursaryService = appServices.NewBursaryService(deps.Repos.BursaryRepository, deps.Repos.UserRepository, deps.FileStorage, deps.Notifier, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.ApplicantController = appControllers.NewApplicantController(deps.ApplicantService, lgr)
	deps.BursaryController = appControllers.NewBursaryController(deps.BursaryService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Serve stored applicant documents
	router.Static("/uploads", cfg.Server.StoragePath)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ApplicantController,
		deps.BursaryController,
		deps.AuthMiddleware,
	)

	return router
}
