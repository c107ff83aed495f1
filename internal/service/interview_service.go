package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/TienDattttt/job-portal-api/internal/auth"
	"github.com/TienDattttt/job-portal-api/internal/domain"
	"github.com/TienDattttt/job-portal-api/internal/events"
	"github.com/TienDattttt/job-portal-api/internal/repository"
	apperrors "github.com/TienDattttt/job-portal-api/pkg/util/errorutil"
)

// InterviewService schedules interviews for applications owned by the
// calling employer.
type InterviewService struct {
	interviews   repository.InterviewRepository
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	employers    repository.EmployerRepository
	dispatcher   events.Dispatcher
}

// NewInterviewService builds the service.
func NewInterviewService(
	interviews repository.InterviewRepository,
	applications repository.ApplicationRepository,
	jobs repository.JobRepository,
	employers repository.EmployerRepository,
	dispatcher events.Dispatcher,
) *InterviewService {
	return &InterviewService{
		interviews:   interviews,
		applications: applications,
		jobs:         jobs,
		employers:    employers,
		dispatcher:   dispatcher,
	}
}

// Schedule creates an interview appointment for an application.
func (s *InterviewService) Schedule(ctx context.Context, identity auth.Identity, applicationID int64, at time.Time, location, note string) (*domain.Interview, error) {
	if at.Before(time.Now()) {
		return nil, apperrors.NewValidationError("interview time must be in the future", nil)
	}

	application, err := s.ownedApplication(ctx, identity, applicationID)
	if err != nil {
		return nil, err
	}

	interview := &domain.Interview{
		ApplicationID: applicationID,
		ScheduledAt:   at,
		Location:      location,
		Note:          note,
		Status:        domain.InterviewStatusScheduled,
	}
	if err := s.interviews.Create(ctx, interview); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventInterviewScheduled,
		Actor:     events.Actor{UserID: identity.UserID, Role: identity.Role},
		Timestamp: time.Now(),
		Payload: events.InterviewScheduledPayload{
			InterviewID:   interview.ID,
			ApplicationID: applicationID,
			CandidateID:   application.CandidateID,
			ScheduledAt:   at,
			Location:      location,
		},
	})
	return interview, nil
}

// ListForApplication returns the interviews scheduled for one application.
func (s *InterviewService) ListForApplication(ctx context.Context, identity auth.Identity, applicationID int64) ([]*domain.Interview, error) {
	if _, err := s.ownedApplication(ctx, identity, applicationID); err != nil {
		return nil, err
	}
	return s.interviews.ListByApplication(ctx, applicationID)
}

// UpdateStatus marks an interview completed or cancelled.
func (s *InterviewService) UpdateStatus(ctx context.Context, identity auth.Identity, interviewID int64, status domain.InterviewStatus) (*domain.Interview, error) {
	switch status {
	case domain.InterviewStatusCompleted, domain.InterviewStatusCancelled:
	default:
		return nil, apperrors.NewValidationError("invalid interview status", nil)
	}

	interview, err := s.interviews.GetByID(ctx, interviewID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("interview", nil)
		}
		return nil, err
	}
	if _, err := s.ownedApplication(ctx, identity, interview.ApplicationID); err != nil {
		return nil, err
	}

	interview.Status = status
	if err := s.interviews.Update(ctx, interview); err != nil {
		return nil, err
	}
	return interview, nil
}

func (s *InterviewService) ownedApplication(ctx context.Context, identity auth.Identity, applicationID int64) (*domain.Application, error) {
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("application", nil)
		}
		return nil, err
	}

	job, err := s.jobs.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, err
	}
	if identity.Role == domain.RoleAdmin {
		return application, nil
	}
	employer, err := s.employers.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewForbidden("application belongs to another employer")
		}
		return nil, err
	}
	if employer.ID != job.EmployerID {
		return nil, apperrors.NewForbidden("application belongs to another employer")
	}
	return application, nil
}
