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

// ApplicationService manages candidate applications to job postings.
type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	employers    repository.EmployerRepository
	dispatcher   events.Dispatcher
}

// NewApplicationService builds the service.
func NewApplicationService(
	applications repository.ApplicationRepository,
	jobs repository.JobRepository,
	employers repository.EmployerRepository,
	dispatcher events.Dispatcher,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		employers:    employers,
		dispatcher:   dispatcher,
	}
}

// Apply submits an application for the calling candidate. One application
// per candidate per job.
func (s *ApplicationService) Apply(ctx context.Context, identity auth.Identity, jobID int64, coverLetter, cvPath string) (*domain.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", nil)
		}
		return nil, err
	}
	if job.Status != domain.JobStatusOpen {
		return nil, apperrors.NewValidationError("job is no longer open", nil)
	}

	if _, err := s.applications.GetByJobAndCandidate(ctx, jobID, identity.UserID); err == nil {
		return nil, apperrors.NewConflict("already applied to this job", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	application := &domain.Application{
		JobID:       jobID,
		CandidateID: identity.UserID,
		CoverLetter: coverLetter,
		CVPath:      cvPath,
		Status:      domain.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, err
	}

	employerUserID := int64(0)
	if employer, err := s.employers.GetByID(ctx, job.EmployerID); err == nil {
		employerUserID = employer.UserID
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventApplicationSubmitted,
		Actor:     events.Actor{UserID: identity.UserID, Role: identity.Role},
		Timestamp: time.Now(),
		Payload: events.ApplicationSubmittedPayload{
			ApplicationID:  application.ID,
			JobID:          jobID,
			CandidateID:    identity.UserID,
			EmployerUserID: employerUserID,
		},
	})
	return application, nil
}

// ListForCandidate returns the caller's own applications. Admins may list
// any candidate's.
func (s *ApplicationService) ListForCandidate(ctx context.Context, identity auth.Identity, candidateID int64) ([]*domain.Application, error) {
	if identity.Role != domain.RoleAdmin && identity.UserID != candidateID {
		return nil, apperrors.NewForbidden("applications belong to another candidate")
	}
	return s.applications.ListByCandidate(ctx, candidateID)
}

// ListForJob returns applications for a job owned by the calling employer.
func (s *ApplicationService) ListForJob(ctx context.Context, identity auth.Identity, jobID int64) ([]*domain.Application, error) {
	if err := s.requireJobOwnership(ctx, identity, jobID); err != nil {
		return nil, err
	}
	return s.applications.ListByJob(ctx, jobID)
}

// UpdateStatus moves an application through its lifecycle, employer side.
func (s *ApplicationService) UpdateStatus(ctx context.Context, identity auth.Identity, applicationID int64, status domain.ApplicationStatus) (*domain.Application, error) {
	switch status {
	case domain.ApplicationStatusReviewing, domain.ApplicationStatusAccepted, domain.ApplicationStatusRejected:
	default:
		return nil, apperrors.NewValidationError("invalid application status", nil)
	}

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("application", nil)
		}
		return nil, err
	}
	if err := s.requireJobOwnership(ctx, identity, application.JobID); err != nil {
		return nil, err
	}

	oldStatus := application.Status
	if err := s.applications.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}
	application.Status = status

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventApplicationStatusChanged,
		Actor:     events.Actor{UserID: identity.UserID, Role: identity.Role},
		Timestamp: time.Now(),
		Payload: events.ApplicationStatusChangedPayload{
			ApplicationID: applicationID,
			CandidateID:   application.CandidateID,
			OldStatus:     oldStatus,
			NewStatus:     status,
		},
	})
	return application, nil
}

func (s *ApplicationService) requireJobOwnership(ctx context.Context, identity auth.Identity, jobID int64) error {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("job", nil)
		}
		return err
	}
	if identity.Role == domain.RoleAdmin {
		return nil
	}
	employer, err := s.employers.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewForbidden("job belongs to another employer")
		}
		return err
	}
	if employer.ID != job.EmployerID {
		return apperrors.NewForbidden("job belongs to another employer")
	}
	return nil
}
