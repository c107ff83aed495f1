package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/TienDattttt/job-portal-api/internal/api/dto"
	"github.com/TienDattttt/job-portal-api/internal/auth"
	"github.com/TienDattttt/job-portal-api/internal/domain"
	"github.com/TienDattttt/job-portal-api/internal/service"
	apperrors "github.com/TienDattttt/job-portal-api/pkg/util/errorutil"
)

// ApplicationsHandler exposes application endpoints.
type ApplicationsHandler struct {
	applications *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{applications: applicationService}
}

// Apply handles POST /api/applications.
func (h *ApplicationsHandler) Apply(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.JobID <= 0 {
		return fiber.NewError(http.StatusBadRequest, "job_id required")
	}

	application, err := h.applications.Apply(c.Context(), identity, req.JobID, req.CoverLetter, req.CVPath)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": applicationToResponse(application)})
}

// ListByUser handles GET /api/applications/user/:userId.
func (h *ApplicationsHandler) ListByUser(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	applications, err := h.applications.ListForCandidate(c.Context(), identity, userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationsToResponse(applications)})
}

// ListByJob handles GET /api/applications/job/:jobId.
func (h *ApplicationsHandler) ListByJob(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	jobID, err := parseID(c, "jobId")
	if err != nil {
		return err
	}

	applications, err := h.applications.ListForJob(c.Context(), identity, jobID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationsToResponse(applications)})
}

// UpdateStatus handles PATCH /api/applications/:id/status. The policy table
// leaves non-POST application routes to the authenticated catch-all, so the
// service enforces employer ownership itself.
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.ApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	application, err := h.applications.UpdateStatus(c.Context(), identity, id, domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": applicationToResponse(application)})
}

func applicationsToResponse(applications []*domain.Application) []dto.ApplicationResponse {
	out := make([]dto.ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		out = append(out, applicationToResponse(application))
	}
	return out
}

func applicationToResponse(application *domain.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:          application.ID,
		JobID:       application.JobID,
		CandidateID: application.CandidateID,
		CoverLetter: application.CoverLetter,
		CVPath:      application.CVPath,
		Status:      string(application.Status),
		AppliedAt:   application.AppliedAt,
	}
}
