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

// JobService manages job postings. Listing and reads are public; writes are
// restricted to the owning employer, with admin override.
type JobService struct {
	jobs       repository.JobRepository
	employers  repository.EmployerRepository
	dispatcher events.Dispatcher
}

// NewJobService builds the service.
func NewJobService(jobs repository.JobRepository, employers repository.EmployerRepository, dispatcher events.Dispatcher) *JobService {
	return &JobService{jobs: jobs, employers: employers, dispatcher: dispatcher}
}

// List returns job postings matching the filter.
func (s *JobService) List(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error) {
	return s.jobs.List(ctx, filter)
}

// Get returns one job posting.
func (s *JobService) Get(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", nil)
		}
		return nil, err
	}
	return job, nil
}

// Create publishes a new job posting owned by the caller's employer record.
func (s *JobService) Create(ctx context.Context, identity auth.Identity, job *domain.Job) (*domain.Job, error) {
	employer, err := s.employerFor(ctx, identity)
	if err != nil {
		return nil, err
	}
	job.EmployerID = employer.ID
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventJobPublished,
		Actor:     events.Actor{UserID: identity.UserID, Role: identity.Role},
		Timestamp: time.Now(),
		Payload: events.JobPublishedPayload{
			JobID:      job.ID,
			EmployerID: employer.ID,
			Title:      job.Title,
		},
	})
	return job, nil
}

// Update modifies an existing posting after an ownership check.
func (s *JobService) Update(ctx context.Context, identity auth.Identity, job *domain.Job) (*domain.Job, error) {
	existing, err := s.Get(ctx, job.ID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwnership(ctx, identity, existing.EmployerID); err != nil {
		return nil, err
	}
	job.EmployerID = existing.EmployerID
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes a posting after an ownership check.
func (s *JobService) Delete(ctx context.Context, identity auth.Identity, id int64) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireOwnership(ctx, identity, existing.EmployerID); err != nil {
		return err
	}
	return s.jobs.Delete(ctx, id)
}

func (s *JobService) employerFor(ctx context.Context, identity auth.Identity) (*domain.Employer, error) {
	employer, err := s.employers.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("employer profile required before posting jobs", nil)
		}
		return nil, err
	}
	return employer, nil
}

func (s *JobService) requireOwnership(ctx context.Context, identity auth.Identity, employerID int64) error {
	if identity.Role == domain.RoleAdmin {
		return nil
	}
	employer, err := s.employerFor(ctx, identity)
	if err != nil {
		return err
	}
	if employer.ID != employerID {
		return apperrors.NewForbidden("job belongs to another employer")
	}
	return nil
}
