package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"ujikom_backend/internal/config"
	"ujikom_backend/internal/controller"
	"ujikom_backend/internal/repository"
	"ujikom_backend/internal/service"
	"ujikom_backend/pkg/database"
	"ujikom_backend/pkg/logger"
	"ujikom_backend/pkg/monitoring"
	"ujikom_backend/pkg/security"
	"ujikom_backend/pkg/tracing"

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
	question   *repository.QuestionRepository
	examResult *repository.ExamResultRepository
	masterData *repository.MasterDataRepository
}

type services struct {
	storage     *service.StorageService
	auth        *service.AuthService
	participant *service.ParticipantService
	question    *service.QuestionService
	exam        *service.ExamService
	interview   *service.InterviewService
	report      *service.ReportService
	masterData  *service.MasterDataService
}

type controllers struct {
	auth        *controller.AuthController
	participant *controller.ParticipantController
	question    *controller.QuestionController
	exam        *controller.ExamController
	interview   *controller.InterviewController
	report      *controller.ReportController
	masterData  *controller.MasterDataController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		question:   repository.NewQuestionRepository(db),
		examResult: repository.NewExamResultRepository(db),
		masterData: repository.NewMasterDataRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.participant = service.NewParticipantService(repos.user, repos.examResult, repos.masterData)
	s.question = service.NewQuestionService(repos.question, s.storage)
	s.exam = service.NewExamService(repos.user, repos.question, repos.examResult, cfg)
	s.interview = service.NewInterviewService(repos.user, repos.examResult)
	s.report = service.NewReportService(repos.user, repos.question, repos.examResult, repos.masterData, rdb, cfg)
	s.masterData = service.NewMasterDataService(repos.masterData, repos.user, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		participant: controller.NewParticipantController(s.participant),
		question:    controller.NewQuestionController(s.question),
		exam:        controller.NewExamController(s.exam),
		interview:   controller.NewInterviewController(s.interview),
		report:      controller.NewReportController(s.report),
		masterData:  controller.NewMasterDataController(s.masterData),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 300
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

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Reports fall back to uncached computation without Redis.
		logger.Log.Warn("Failed to initialize redis, report caching disabled", zap.Error(err))
		rdb = nil
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

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("ujikom-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

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
