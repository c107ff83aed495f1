package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/TienDattttt/job-portal-api/internal/auth"
	"github.com/TienDattttt/job-portal-api/internal/domain"
	"github.com/TienDattttt/job-portal-api/internal/events"
	"github.com/TienDattttt/job-portal-api/internal/repository"
)

// NotificationService persists notifications for domain events and exposes
// the per-user inbox.
type NotificationService struct {
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(notifications repository.NotificationRepository, dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventApplicationSubmitted, n.handleApplicationSubmitted)
	n.dispatcher.Subscribe(events.EventApplicationStatusChanged, n.handleApplicationStatusChanged)
	n.dispatcher.Subscribe(events.EventInterviewScheduled, n.handleInterviewScheduled)
}

// ListForUser returns the caller's notifications.
func (n *NotificationService) ListForUser(ctx context.Context, identity auth.Identity) ([]*domain.Notification, error) {
	return n.notifications.ListByUser(ctx, identity.UserID)
}

// MarkRead marks one of the caller's notifications as read.
func (n *NotificationService) MarkRead(ctx context.Context, identity auth.Identity, notificationID int64) error {
	return n.notifications.MarkRead(ctx, notificationID, identity.UserID)
}

func (n *NotificationService) handleApplicationSubmitted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ApplicationSubmittedPayload)
	if !ok || payload.EmployerUserID == 0 {
		return nil
	}
	n.logger.Info("ApplicationSubmitted", zap.Int64("application_id", payload.ApplicationID))
	return n.notifications.Create(ctx, &domain.Notification{
		UserID: payload.EmployerUserID,
		Title:  "New application received",
		Body:   fmt.Sprintf("A candidate applied to job #%d", payload.JobID),
	})
}

func (n *NotificationService) handleApplicationStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.ApplicationStatusChangedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("ApplicationStatusChanged", zap.Int64("application_id", payload.ApplicationID))
	return n.notifications.Create(ctx, &domain.Notification{
		UserID: payload.CandidateID,
		Title:  "Application status updated",
		Body:   fmt.Sprintf("Your application #%d is now %s", payload.ApplicationID, payload.NewStatus),
	})
}

func (n *NotificationService) handleInterviewScheduled(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.InterviewScheduledPayload)
	if !ok {
		return nil
	}
	n.logger.Info("InterviewScheduled", zap.Int64("interview_id", payload.InterviewID))
	return n.notifications.Create(ctx, &domain.Notification{
		UserID: payload.CandidateID,
		Title:  "Interview scheduled",
		Body:   fmt.Sprintf("Interview on %s at %s", payload.ScheduledAt.Format("2006-01-02 15:04"), payload.Location),
	})
}
