package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TienDattttt/job-portal-api/internal/api/http/handlers"
	"github.com/TienDattttt/job-portal-api/internal/auth"
	"github.com/TienDattttt/job-portal-api/internal/config"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Jobs           *handlers.JobsHandler
	Applications   *handlers.ApplicationsHandler
	Interviews     *handlers.InterviewsHandler
	Profile        *handlers.ProfileHandler
	Employers      *handlers.EmployersHandler
	Notifications  *handlers.NotificationsHandler
	Statistics     *handlers.StatisticsHandler
	Uploads        *handlers.UploadsHandler
	AuthMiddleware *auth.Middleware
	Policy         *auth.Policy
	Upload         config.UploadConfig
}

// RegisterRoutes wires HTTP routes. Authentication runs first and only
// attaches identity; the policy middleware makes every allow/reject
// decision, so handlers below can assume the route table already ran.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Use(cfg.AuthMiddleware.Handle, cfg.Policy.Handler())

	app.Static(cfg.Upload.PublicRoute, cfg.Upload.Dir)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	jobs := api.Group("/jobs")
	jobs.Get("/", cfg.Jobs.List)
	jobs.Get("/:id", cfg.Jobs.Get)
	jobs.Post("/", cfg.Jobs.Create)
	jobs.Put("/:id", cfg.Jobs.Update)
	jobs.Delete("/:id", cfg.Jobs.Delete)

	applications := api.Group("/applications")
	applications.Post("/", cfg.Applications.Apply)
	applications.Get("/user/:userId", cfg.Applications.ListByUser)
	applications.Get("/job/:jobId", cfg.Applications.ListByJob)
	applications.Patch("/:id/status", cfg.Applications.UpdateStatus)

	interviews := api.Group("/interviews")
	interviews.Post("/", cfg.Interviews.Schedule)
	interviews.Get("/application/:applicationId", cfg.Interviews.ListByApplication)
	interviews.Patch("/:id/status", cfg.Interviews.UpdateStatus)

	profile := api.Group("/profile")
	profile.Get("/", cfg.Profile.Get)
	profile.Put("/", cfg.Profile.Update)
	profile.Post("/cv", cfg.Uploads.UploadCV)

	employers := api.Group("/employers")
	employers.Get("/me", cfg.Employers.GetOwn)
	employers.Put("/me", cfg.Employers.Upsert)
	employers.Post("/me/logo", cfg.Uploads.UploadLogo)
	employers.Get("/:id", cfg.Employers.Get)

	notifications := api.Group("/notifications")
	notifications.Get("/", cfg.Notifications.List)
	notifications.Patch("/:id/read", cfg.Notifications.MarkRead)

	statistics := api.Group("/statistics")
	statistics.Get("/recruitment", cfg.Statistics.Recruitment)
	statistics.Get("/recruitment/:employerId", cfg.Statistics.RecruitmentForEmployer)
}
