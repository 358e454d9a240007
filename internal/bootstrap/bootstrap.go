package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appControllers "github.com/eakyol/campusdesk/internal/app/controllers"
	appRepos "github.com/eakyol/campusdesk/internal/app/repositories"
	appRoutes "github.com/eakyol/campusdesk/internal/app/routes"
	appServices "github.com/eakyol/campusdesk/internal/app/services"
	"github.com/eakyol/campusdesk/internal/config"
	"github.com/eakyol/campusdesk/internal/db"
	"github.com/eakyol/campusdesk/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService      appServices.StudentService
	CourseService       appServices.CourseService
	StatsService        appServices.StatsService
	StudentController   *appControllers.StudentController
	CourseController    *appControllers.CourseController
	DashboardController *appControllers.DashboardController
	HealthController    *appControllers.HealthController
	Repos               *appRepos.Repositories
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

// SetupDatabase establishes the MongoDB connection and ensures indexes.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.Mongo, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewMongo(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Str("database", cfg.Database.Name).Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ensure database indexes")
		_ = database.Close(context.Background())
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	lgr.Info().Msg("Database indexes ensured.")

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.Mongo, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Database)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.StudentRepository)
	deps.StatsService = appServices.NewStatsService(deps.Repos.StudentRepository, deps.Repos.CourseRepository)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.DashboardController = appControllers.NewDashboardController(deps.StatsService)
	deps.HealthController = appControllers.NewHealthController(database, cfg.Server.Mode)

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

	// Setup Swagger. doc.json is served by the swag-generated docs package,
	// which must be registered with a blank import after running swag init
	// (see README, API documentation).
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.CourseController,
		deps.DashboardController,
		deps.HealthController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
