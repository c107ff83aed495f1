package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/TienDattttt/job-portal-api/internal/auth"
	"github.com/TienDattttt/job-portal-api/internal/domain"
	"github.com/TienDattttt/job-portal-api/internal/repository"
	apperrors "github.com/TienDattttt/job-portal-api/pkg/util/errorutil"
)

// EmployerService manages employer company records (employer self-service,
// admin override).
type EmployerService struct {
	employers repository.EmployerRepository
}

// NewEmployerService builds the service.
func NewEmployerService(employers repository.EmployerRepository) *EmployerService {
	return &EmployerService{employers: employers}
}

// GetOwn returns the caller's employer record.
func (s *EmployerService) GetOwn(ctx context.Context, identity auth.Identity) (*domain.Employer, error) {
	employer, err := s.employers.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employer", nil)
		}
		return nil, err
	}
	return employer, nil
}

// Upsert creates or updates the caller's employer record.
func (s *EmployerService) Upsert(ctx context.Context, identity auth.Identity, employer *domain.Employer) (*domain.Employer, error) {
	existing, err := s.employers.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		employer.UserID = identity.UserID
		if err := s.employers.Create(ctx, employer); err != nil {
			return nil, err
		}
		return employer, nil
	}

	employer.ID = existing.ID
	employer.UserID = existing.UserID
	if employer.LogoPath == "" {
		employer.LogoPath = existing.LogoPath
	}
	if err := s.employers.Update(ctx, employer); err != nil {
		return nil, err
	}
	return employer, nil
}

// Get returns an employer record by id; non-admins may fetch only their own.
func (s *EmployerService) Get(ctx context.Context, identity auth.Identity, id int64) (*domain.Employer, error) {
	employer, err := s.employers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employer", nil)
		}
		return nil, err
	}
	if identity.Role != domain.RoleAdmin && employer.UserID != identity.UserID {
		return nil, apperrors.NewForbidden("employer record belongs to another user")
	}
	return employer, nil
}

// AttachLogo stores the uploaded logo path on the caller's employer record.
func (s *EmployerService) AttachLogo(ctx context.Context, identity auth.Identity, logoPath string) (*domain.Employer, error) {
	employer, err := s.GetOwn(ctx, identity)
	if err != nil {
		return nil, err
	}
	employer.LogoPath = logoPath
	if err := s.employers.Update(ctx, employer); err != nil {
		return nil, err
	}
	return employer, nil
}
