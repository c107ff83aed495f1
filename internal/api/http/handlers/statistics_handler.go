package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TienDattttt/job-portal-api/internal/auth"
	"github.com/TienDattttt/job-portal-api/internal/service"
	apperrors "github.com/TienDattttt/job-portal-api/pkg/util/errorutil"
)

// StatisticsHandler exposes recruitment statistics endpoints.
type StatisticsHandler struct {
	statistics *service.StatisticsService
}

// NewStatisticsHandler constructs handler.
func NewStatisticsHandler(statisticsService *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statistics: statisticsService}
}

// Recruitment handles GET /api/statistics/recruitment.
func (h *StatisticsHandler) Recruitment(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	stats, err := h.statistics.Recruitment(c.Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}

// RecruitmentForEmployer handles GET /api/statistics/recruitment/:employerId.
func (h *StatisticsHandler) RecruitmentForEmployer(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	employerID, err := parseID(c, "employerId")
	if err != nil {
		return err
	}

	stats, err := h.statistics.RecruitmentForEmployer(c.Context(), identity, employerID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": stats})
}
