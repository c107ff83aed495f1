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

// InterviewsHandler exposes interview scheduling endpoints.
type InterviewsHandler struct {
	interviews *service.InterviewService
}

// NewInterviewsHandler constructs handler.
func NewInterviewsHandler(interviewService *service.InterviewService) *InterviewsHandler {
	return &InterviewsHandler{interviews: interviewService}
}

// Schedule handles POST /api/interviews.
func (h *InterviewsHandler) Schedule(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ScheduleInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.ApplicationID <= 0 || req.ScheduledAt.IsZero() {
		return fiber.NewError(http.StatusBadRequest, "application_id and scheduled_at required")
	}

	interview, err := h.interviews.Schedule(c.Context(), identity, req.ApplicationID, req.ScheduledAt, req.Location, req.Note)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": interviewToResponse(interview)})
}

// ListByApplication handles GET /api/interviews/application/:applicationId.
func (h *InterviewsHandler) ListByApplication(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	applicationID, err := parseID(c, "applicationId")
	if err != nil {
		return err
	}

	interviews, err := h.interviews.ListForApplication(c.Context(), identity, applicationID)
	if err != nil {
		return err
	}

	out := make([]dto.InterviewResponse, 0, len(interviews))
	for _, interview := range interviews {
		out = append(out, interviewToResponse(interview))
	}
	return c.JSON(fiber.Map{"data": out})
}

// UpdateStatus handles PATCH /api/interviews/:id/status.
func (h *InterviewsHandler) UpdateStatus(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.InterviewStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	interview, err := h.interviews.UpdateStatus(c.Context(), identity, id, domain.InterviewStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": interviewToResponse(interview)})
}

func interviewToResponse(interview *domain.Interview) dto.InterviewResponse {
	return dto.InterviewResponse{
		ID:            interview.ID,
		ApplicationID: interview.ApplicationID,
		ScheduledAt:   interview.ScheduledAt,
		Location:      interview.Location,
		Note:          interview.Note,
		Status:        string(interview.Status),
	}
}
