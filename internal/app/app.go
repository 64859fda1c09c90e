package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bright-ted/SkillTrack/internal/config"
	"github.com/Bright-ted/SkillTrack/internal/controller"
	"github.com/Bright-ted/SkillTrack/internal/repository"
	"github.com/Bright-ted/SkillTrack/internal/service"
	"github.com/Bright-ted/SkillTrack/pkg/database"
	"github.com/Bright-ted/SkillTrack/pkg/logger"
	"github.com/Bright-ted/SkillTrack/pkg/monitoring"
	"github.com/Bright-ted/SkillTrack/pkg/security"
	"github.com/Bright-ted/SkillTrack/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user          *repository.UserRepository
	course        *repository.CourseRepository
	enrollment    *repository.EnrollmentRepository
	quiz          *repository.QuizRepository
	question      *repository.QuestionRepository
	examResult    *repository.ExamResultRepository
	studentAnswer *repository.StudentAnswerRepository
	level         *repository.LevelRepository
	xpTransaction *repository.XPTransactionRepository
}

type services struct {
	auth       *service.AuthService
	course     *service.CourseService
	submission *service.SubmissionService
	progress   *service.ProgressionService
	gradebook  *service.GradebookService
	dashboard  *service.DashboardService
	admin      *service.AdminService
}

type controllers struct {
	auth      *controller.AuthController
	course    *controller.CourseController
	student   *controller.StudentController
	gradebook *controller.GradebookController
	dashboard *controller.DashboardController
	admin     *controller.AdminController
	health    *controller.HealthController
}

// RegisterConfigCallback adds a hook invoked on hot config reload.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig swaps the config and notifies registered callbacks.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:          repository.NewUserRepository(db),
		course:        repository.NewCourseRepository(db),
		enrollment:    repository.NewEnrollmentRepository(db),
		quiz:          repository.NewQuizRepository(db),
		question:      repository.NewQuestionRepository(db),
		examResult:    repository.NewExamResultRepository(db),
		studentAnswer: repository.NewStudentAnswerRepository(db),
		level:         repository.NewLevelRepository(db),
		xpTransaction: repository.NewXPTransactionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageProvider(cfg.Storage)
	if err != nil {
		return nil, err
	}

	s := &services{}
	s.auth = service.NewAuthService(repos.user, cfg)
	s.course = service.NewCourseService(repos.course, repos.enrollment, repos.quiz, repos.question, repos.user)
	s.progress = service.NewProgressionService(repos.user, repos.course, repos.level, repos.xpTransaction, db)
	s.submission = service.NewSubmissionService(repos.quiz, repos.question, repos.examResult, repos.studentAnswer, s.progress)
	s.gradebook = service.NewGradebookService(repos.course, repos.enrollment, repos.quiz, repos.examResult, repos.user, rdb, storage, cfg)
	s.dashboard = service.NewDashboardService(repos.user, repos.course, repos.enrollment, repos.quiz, repos.examResult)
	s.admin = service.NewAdminService(repos.user)
	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		course:    controller.NewCourseController(s.course),
		student:   controller.NewStudentController(s.course, s.submission, s.dashboard),
		gradebook: controller.NewGradebookController(s.gradebook, s.submission),
		dashboard: controller.NewDashboardController(s.dashboard),
		admin:     controller.NewAdminController(s.admin),
		health:    controller.NewHealthController(db),
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
	services, err := app.initServices(repos, cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("skilltrack", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

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

	logger.Log.Sync()
	log.Println("Server exiting")
}
