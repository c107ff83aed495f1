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

// EmployersHandler exposes employer record endpoints.
type EmployersHandler struct {
	employers *service.EmployerService
}

// NewEmployersHandler constructs handler.
func NewEmployersHandler(employerService *service.EmployerService) *EmployersHandler {
	return &EmployersHandler{employers: employerService}
}

// GetOwn handles GET /api/employers/me.
func (h *EmployersHandler) GetOwn(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	employer, err := h.employers.GetOwn(c.Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employerToResponse(employer)})
}

// Get handles GET /api/employers/:id.
func (h *EmployersHandler) Get(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	employer, err := h.employers.Get(c.Context(), identity, id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employerToResponse(employer)})
}

// Upsert handles PUT /api/employers/me.
func (h *EmployersHandler) Upsert(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.EmployerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.CompanyName == "" {
		return fiber.NewError(http.StatusBadRequest, "company_name required")
	}

	employer := &domain.Employer{
		CompanyName: req.CompanyName,
		Website:     req.Website,
		Address:     req.Address,
		Description: req.Description,
	}

	saved, err := h.employers.Upsert(c.Context(), identity, employer)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": employerToResponse(saved)})
}

func employerToResponse(employer *domain.Employer) dto.EmployerResponse {
	return dto.EmployerResponse{
		ID:          employer.ID,
		UserID:      employer.UserID,
		CompanyName: employer.CompanyName,
		Website:     employer.Website,
		Address:     employer.Address,
		LogoPath:    employer.LogoPath,
		Description: employer.Description,
	}
}
