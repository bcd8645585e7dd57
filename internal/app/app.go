package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lsv_backend/internal/config"
	"lsv_backend/internal/controller"
	"lsv_backend/internal/repository"
	"lsv_backend/internal/service"
	"lsv_backend/pkg/configwatcher"
	"lsv_backend/pkg/database"
	"lsv_backend/pkg/logger"
	"lsv_backend/pkg/monitoring"
	"lsv_backend/pkg/security"
	"lsv_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user       *repository.UserRepository
	language   *repository.LanguageRepository
	stage      *repository.StageRepository
	lesson     *repository.LessonRepository
	quiz       *repository.QuizRepository
	submission *repository.SubmissionRepository
	userLesson *repository.UserLessonRepository
}

type services struct {
	auth        *service.AuthService
	language    *service.LanguageService
	stage       *service.StageService
	lesson      *service.LessonService
	quiz        *service.QuizService
	leaderboard *service.LeaderboardService
	userLesson  *service.UserLessonService
}

type controllers struct {
	auth        *controller.AuthController
	language    *controller.LanguageController
	stage       *controller.StageController
	lesson      *controller.LessonController
	quiz        *controller.QuizController
	leaderboard *controller.LeaderboardController
	userLesson  *controller.UserLessonController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		language:   repository.NewLanguageRepository(db),
		stage:      repository.NewStageRepository(db),
		lesson:     repository.NewLessonRepository(db),
		quiz:       repository.NewQuizRepository(db),
		submission: repository.NewSubmissionRepository(db),
		userLesson: repository.NewUserLessonRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	return &services{
		auth:        service.NewAuthService(repos.user, cfg),
		language:    service.NewLanguageService(repos.language, rdb),
		stage:       service.NewStageService(repos.stage, repos.language, repos.submission),
		lesson:      service.NewLessonService(repos.lesson, repos.language, repos.stage, repos.submission),
		quiz:        service.NewQuizService(repos.quiz, repos.lesson, repos.submission, repos.user),
		leaderboard: service.NewLeaderboardService(repos.submission, repos.language),
		userLesson:  service.NewUserLessonService(repos.userLesson, repos.lesson, repos.user),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		language:    controller.NewLanguageController(s.language),
		stage:       controller.NewStageController(s.stage),
		lesson:      controller.NewLessonController(s.lesson),
		quiz:        controller.NewQuizController(s.quiz),
		leaderboard: controller.NewLeaderboardController(s.leaderboard),
		userLesson:  controller.NewUserLessonController(s.userLesson),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
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

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
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
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("lsv-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Seed {
		if err := service.NewSeedService(db).Run(); err != nil {
			logger.Log.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Config file reloaded")
		app.Config.CORS = newCfg.CORS
		app.Config.RateLimit = newCfg.RateLimit
	})

	return app
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

	log.Println("Server exiting")
}
