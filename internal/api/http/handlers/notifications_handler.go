package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/TienDattttt/job-portal-api/internal/api/dto"
	"github.com/TienDattttt/job-portal-api/internal/auth"
	"github.com/TienDattttt/job-portal-api/internal/service"
	apperrors "github.com/TienDattttt/job-portal-api/pkg/util/errorutil"
)

// NotificationsHandler exposes the per-user notification inbox.
type NotificationsHandler struct {
	notifications *service.NotificationService
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(notificationService *service.NotificationService) *NotificationsHandler {
	return &NotificationsHandler{notifications: notificationService}
}

// List handles GET /api/notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	notifications, err := h.notifications.ListForUser(c.Context(), identity)
	if err != nil {
		return err
	}

	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		out = append(out, dto.NotificationResponse{
			ID:        notification.ID,
			Title:     notification.Title,
			Body:      notification.Body,
			Read:      notification.Read,
			CreatedAt: notification.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": out})
}

// MarkRead handles PATCH /api/notifications/:id/read.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.notifications.MarkRead(c.Context(), identity, id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
