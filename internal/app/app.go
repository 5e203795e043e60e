package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"trivia_quiz_backend/internal/config"
	"trivia_quiz_backend/internal/controller"
	"trivia_quiz_backend/internal/repository"
	"trivia_quiz_backend/internal/service"
	"trivia_quiz_backend/pkg/database"
	"trivia_quiz_backend/pkg/logger"
	"trivia_quiz_backend/pkg/monitoring"
	"trivia_quiz_backend/pkg/security"
	"trivia_quiz_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	services       *services
	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	question  *repository.QuestionRepository
	settings  *repository.SettingsRepository
	gameState *repository.GameStateRepository
	adminUser *repository.AdminUserRepository
}

type services struct {
	quiz    *service.QuizService
	admin   *service.AdminService
	auth    *service.AuthService
	storage *service.StorageService
}

type controllers struct {
	quiz   *controller.QuizController
	admin  *controller.AdminController
	auth   *controller.AuthController
	health *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		question:  repository.NewQuestionRepository(db),
		settings:  repository.NewSettingsRepository(db),
		gameState: repository.NewGameStateRepository(db),
		adminUser: repository.NewAdminUserRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.quiz = service.NewQuizService(repos.question, repos.gameState, repos.settings, cfg, rdb)
	s.admin = service.NewAdminService(repos.question, repos.settings, s.quiz, cfg)
	s.auth = service.NewAuthService(repos.adminUser, cfg)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		quiz:   controller.NewQuizController(s.quiz),
		admin:  controller.NewAdminController(s.admin, s.quiz, s.storage),
		auth:   controller.NewAuthController(s.auth),
		health: controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ReloadConfig is invoked by the config watcher. Only settings read per
// request from a.Config pick up the new values; listeners and middleware
// keep their startup configuration.
func (a *App) ReloadConfig(newCfg *config.Config) {
	*a.Config = *newCfg
	logger.Log.Info("Configuration reloaded")
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("trivia-quiz", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func ginMode(serverMode string) string {
	if serverMode == "release" {
		return gin.ReleaseMode
	}
	return gin.DebugMode
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
