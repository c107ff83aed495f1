package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/TienDattttt/job-portal-api/internal/api/dto"
	"github.com/TienDattttt/job-portal-api/internal/auth"
	"github.com/TienDattttt/job-portal-api/internal/domain"
	"github.com/TienDattttt/job-portal-api/internal/service"
	apperrors "github.com/TienDattttt/job-portal-api/pkg/util/errorutil"
)

// JobsHandler exposes job posting endpoints.
type JobsHandler struct {
	jobs *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{jobs: jobService}
}

// List handles GET /api/jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	filter := domain.JobFilter{
		Keyword:  c.Query("q"),
		Location: c.Query("location"),
		Limit:    c.QueryInt("limit", 20),
		Offset:   c.QueryInt("offset", 0),
	}
	if status := c.Query("status"); status != "" {
		jobStatus := domain.JobStatus(status)
		filter.Status = &jobStatus
	}

	jobs, err := h.jobs.List(c.Context(), filter)
	if err != nil {
		return err
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, jobToResponse(job))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get handles GET /api/jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	job, err := h.jobs.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobToResponse(job)})
}

// Create handles POST /api/jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" || req.Description == "" {
		return fiber.NewError(http.StatusBadRequest, "title and description required")
	}

	job, err := h.jobs.Create(c.Context(), identity, jobFromRequest(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": jobToResponse(job)})
}

// Update handles PUT /api/jobs/:id.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	job := jobFromRequest(req)
	job.ID = id
	updated, err := h.jobs.Update(c.Context(), identity, job)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobToResponse(updated)})
}

// Delete handles DELETE /api/jobs/:id.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.jobs.Delete(c.Context(), identity, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func jobFromRequest(req dto.JobRequest) *domain.Job {
	job := &domain.Job{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		Deadline:    req.Deadline,
	}
	if req.Status != "" {
		job.Status = domain.JobStatus(req.Status)
	}
	return job
}

func jobToResponse(job *domain.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:          job.ID,
		EmployerID:  job.EmployerID,
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		SalaryMin:   job.SalaryMin,
		SalaryMax:   job.SalaryMax,
		Status:      string(job.Status),
		Deadline:    job.Deadline,
		CreatedAt:   job.CreatedAt,
	}
}

func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
