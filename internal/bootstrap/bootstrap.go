package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	appControllers "github.com/kaan/gamerhub/internal/app/controllers"
	appMigrations "github.com/kaan/gamerhub/internal/app/migrations"
	appRepos "github.com/kaan/gamerhub/internal/app/repositories"
	appRoutes "github.com/kaan/gamerhub/internal/app/routes"
	appServices "github.com/kaan/gamerhub/internal/app/services"
	"github.com/kaan/gamerhub/internal/config"
	"github.com/kaan/gamerhub/internal/db"
	appMiddleware "github.com/kaan/gamerhub/internal/middleware"
	pkgAuth "github.com/kaan/gamerhub/internal/pkg/auth"
	"github.com/kaan/gamerhub/internal/pkg/email"
	"github.com/kaan/gamerhub/internal/pkg/filestorage"
	"github.com/kaan/gamerhub/internal/pkg/helpers"
	"github.com/kaan/gamerhub/internal/pkg/logger"
	"github.com/kaan/gamerhub/internal/seed"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	EventService      appServices.EventService
	StaffService      appServices.StaffService
	TicketService     appServices.TicketService
	PostService       appServices.PostService
	CommentService    appServices.CommentService
	UpdateService     appServices.UpdateService
	AuthController    *appControllers.AuthController
	EventController   *appControllers.EventController
	StaffController   *appControllers.StaffController
	TicketController  *appControllers.TicketController
	PostController    *appControllers.PostController
	CommentController *appControllers.CommentController
	UpdateController  *appControllers.UpdateController
	UploadController  *appControllers.UploadController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Notifier          email.Notifier
	Logger            zerolog.Logger
	FileStorage       *filestorage.LocalStorage
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
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding is best-effort; a failure should not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// File storage serves uploads back under the static /uploads route
	publicURL := cfg.Server.PublicURL
	if publicURL == "" {
		publicURL = "http://localhost:" + cfg.Server.Port
	}
	fileStorageBaseURL := strings.TrimRight(publicURL, "/") + "/uploads"

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Notifier = email.NewSMTPNotifier(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(deps.Repos.StaffRepository, deps.JWTService)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository)
	deps.StaffService = appServices.NewStaffService(deps.Repos.StaffRepository)
	deps.TicketService = appServices.NewTicketService(deps.Repos.TicketRepository, deps.Notifier)
	deps.PostService = appServices.NewPostService(deps.Repos.PostRepository, deps.Repos.StaffRepository, deps.FileStorage)
	deps.CommentService = appServices.NewCommentService(deps.Repos.CommentRepository)
	deps.UpdateService = appServices.NewUpdateService(deps.Repos.UpdateRepository, deps.Repos.StaffRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.StaffController = appControllers.NewStaffController(deps.StaffService)
	deps.TicketController = appControllers.NewTicketController(deps.TicketService)
	deps.PostController = appControllers.NewPostController(deps.PostService)
	deps.CommentController = appControllers.NewCommentController(deps.CommentService)
	deps.UpdateController = appControllers.NewUpdateController(deps.UpdateService)
	deps.UploadController = appControllers.NewUploadController(deps.FileStorage)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.EventController,
		deps.StaffController,
		deps.TicketController,
		deps.PostController,
		deps.CommentController,
		deps.UpdateController,
		deps.UploadController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
