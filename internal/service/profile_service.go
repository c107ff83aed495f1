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

// ProfileService manages candidate profiles. Row-level ownership comes from
// the token's userId: a candidate only ever reads and writes their own row.
type ProfileService struct {
	profiles repository.ProfileRepository
}

// NewProfileService builds the service.
func NewProfileService(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get returns the profile owned by userID. Admins may read any profile.
func (s *ProfileService) Get(ctx context.Context, identity auth.Identity, userID int64) (*domain.CandidateProfile, error) {
	if identity.Role != domain.RoleAdmin && identity.UserID != userID {
		return nil, apperrors.NewForbidden("profile belongs to another user")
	}
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("profile", nil)
		}
		return nil, err
	}
	return profile, nil
}

// Update writes the caller's own profile.
func (s *ProfileService) Update(ctx context.Context, identity auth.Identity, profile *domain.CandidateProfile) (*domain.CandidateProfile, error) {
	if identity.Role != domain.RoleAdmin && identity.UserID != profile.UserID {
		return nil, apperrors.NewForbidden("profile belongs to another user")
	}
	if err := s.profiles.Update(ctx, profile); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("profile", nil)
		}
		return nil, err
	}
	return s.profiles.GetByUserID(ctx, profile.UserID)
}

// AttachCV stores the uploaded CV path on the caller's profile.
func (s *ProfileService) AttachCV(ctx context.Context, identity auth.Identity, cvPath string) (*domain.CandidateProfile, error) {
	profile, err := s.profiles.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("profile", nil)
		}
		return nil, err
	}
	profile.CVPath = cvPath
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
