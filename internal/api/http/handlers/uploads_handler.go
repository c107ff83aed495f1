package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/TienDattttt/job-portal-api/internal/auth"
	"github.com/TienDattttt/job-portal-api/internal/config"
	"github.com/TienDattttt/job-portal-api/internal/service"
	apperrors "github.com/TienDattttt/job-portal-api/pkg/util/errorutil"
)

// UploadsHandler stores CV and logo uploads on disk and records their path
// on the owning record. Stored names are random so a client cannot probe for
// other users' files.
type UploadsHandler struct {
	cfg       config.UploadConfig
	profiles  *service.ProfileService
	employers *service.EmployerService
}

// NewUploadsHandler constructs handler.
func NewUploadsHandler(cfg config.UploadConfig, profiles *service.ProfileService, employers *service.EmployerService) *UploadsHandler {
	return &UploadsHandler{cfg: cfg, profiles: profiles, employers: employers}
}

// UploadCV handles POST /api/profile/cv.
func (h *UploadsHandler) UploadCV(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	publicPath, err := h.saveFile(c, "cv", []string{".pdf", ".doc", ".docx"})
	if err != nil {
		return err
	}

	profile, err := h.profiles.AttachCV(c.Context(), identity, publicPath)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"cv_path": profile.CVPath}})
}

// UploadLogo handles POST /api/employers/me/logo.
func (h *UploadsHandler) UploadLogo(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	publicPath, err := h.saveFile(c, "logo", []string{".png", ".jpg", ".jpeg"})
	if err != nil {
		return err
	}

	employer, err := h.employers.AttachLogo(c.Context(), identity, publicPath)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"logo_path": employer.LogoPath}})
}

func (h *UploadsHandler) saveFile(c *fiber.Ctx, field string, allowedExts []string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", fiber.NewError(http.StatusBadRequest, field+" file required")
	}
	if file.Size > int64(h.cfg.MaxSizeMB)*1024*1024 {
		return "", fiber.NewError(http.StatusBadRequest, fmt.Sprintf("file exceeds %d MB", h.cfg.MaxSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, e := range allowedExts {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", fiber.NewError(http.StatusBadRequest, "unsupported file type")
	}

	if err := os.MkdirAll(h.cfg.Dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	if err := c.SaveFile(file, filepath.Join(h.cfg.Dir, name)); err != nil {
		return "", err
	}
	return h.cfg.PublicRoute + "/" + name, nil
}
