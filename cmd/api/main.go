package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/TienDattttt/job-portal-api/internal/api/http"
	"github.com/TienDattttt/job-portal-api/internal/api/http/handlers"
	"github.com/TienDattttt/job-portal-api/internal/auth"
	"github.com/TienDattttt/job-portal-api/internal/config"
	"github.com/TienDattttt/job-portal-api/internal/events"
	"github.com/TienDattttt/job-portal-api/internal/observability"
	"github.com/TienDattttt/job-portal-api/internal/persistence"
	"github.com/TienDattttt/job-portal-api/internal/repository"
	"github.com/TienDattttt/job-portal-api/internal/service"
	"github.com/TienDattttt/job-portal-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	employerRepo := repository.NewEmployerRepository(pool)
	jobRepo := repository.NewJobRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)
	interviewRepo := repository.NewInterviewRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	statisticsRepo := repository.NewStatisticsRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:    userRepo,
		RoleRepo:    roleRepo,
		ProfileRepo: profileRepo,
	}, logger)
	jobService := service.NewJobService(jobRepo, employerRepo, dispatcher)
	applicationService := service.NewApplicationService(applicationRepo, jobRepo, employerRepo, dispatcher)
	interviewService := service.NewInterviewService(interviewRepo, applicationRepo, jobRepo, employerRepo, dispatcher)
	profileService := service.NewProfileService(profileRepo)
	employerService := service.NewEmployerService(employerRepo)
	notificationService := service.NewNotificationService(notificationRepo, dispatcher, logger)
	statisticsService := service.NewStatisticsService(statisticsRepo, employerRepo, redis.Client, logger)

	worker.StartNotificationWorker(notificationService)

	extractor := auth.NewExtractor(authService.TokenManager())
	authMiddleware := auth.NewMiddleware(extractor, logger)
	policy, err := auth.NewPolicy(auth.DefaultRules())
	if err != nil {
		logger.Fatal("invalid authorization rule table", zap.Error(err))
	}

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Upload.MaxSizeMB * 1024 * 1024,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.CORS)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Jobs:           handlers.NewJobsHandler(jobService),
		Applications:   handlers.NewApplicationsHandler(applicationService),
		Interviews:     handlers.NewInterviewsHandler(interviewService),
		Profile:        handlers.NewProfileHandler(profileService),
		Employers:      handlers.NewEmployersHandler(employerService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
		Statistics:     handlers.NewStatisticsHandler(statisticsService),
		Uploads:        handlers.NewUploadsHandler(cfg.Upload, profileService, employerService),
		AuthMiddleware: authMiddleware,
		Policy:         policy,
		Upload:         cfg.Upload,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
