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

// ProfileHandler exposes candidate profile endpoints.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profileService}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	profile, err := h.profiles.Get(c.Context(), identity, identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profileToResponse(profile)})
}

// Update handles PUT /api/profile.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	profile := &domain.CandidateProfile{
		UserID:     identity.UserID,
		BirthDate:  req.BirthDate,
		Address:    req.Address,
		Gender:     req.Gender,
		Education:  req.Education,
		Skills:     req.Skills,
		Experience: req.Experience,
		Summary:    req.Summary,
	}

	updated, err := h.profiles.Update(c.Context(), identity, profile)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profileToResponse(updated)})
}

func profileToResponse(profile *domain.CandidateProfile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:         profile.ID,
		UserID:     profile.UserID,
		BirthDate:  profile.BirthDate,
		Address:    profile.Address,
		Gender:     profile.Gender,
		Education:  profile.Education,
		Skills:     profile.Skills,
		Experience: profile.Experience,
		CVPath:     profile.CVPath,
		Summary:    profile.Summary,
	}
}
