package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TienDattttt/job-portal-api/internal/auth"
	"github.com/TienDattttt/job-portal-api/internal/config"
	"github.com/TienDattttt/job-portal-api/internal/domain"
	apperrors "github.com/TienDattttt/job-portal-api/pkg/util/errorutil"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*domain.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

type fakeRoleRepo struct{}

func (fakeRoleRepo) GetNameByID(_ context.Context, id int) (string, error) {
	switch id {
	case domain.RoleIDAdmin:
		return "ADMIN", nil
	case domain.RoleIDEmployer:
		return "EMPLOYER", nil
	case domain.RoleIDCandidate:
		return "CANDIDATE", nil
	}
	return "", pgx.ErrNoRows
}

type fakeProfileRepo struct {
	byUserID map[int64]*domain.CandidateProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byUserID: map[int64]*domain.CandidateProfile{}}
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *domain.CandidateProfile) error {
	r.byUserID[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, profile *domain.CandidateProfile) error {
	r.byUserID[profile.UserID] = profile
	return nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID int64) (*domain.CandidateProfile, error) {
	if p, ok := r.byUserID[userID]; ok {
		return p, nil
	}
	return nil, pgx.ErrNoRows
}

func newAuthFixture() (*AuthService, *fakeUserRepo, *fakeProfileRepo) {
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "0123456789abcdef0123456789abcdef",
			TokenTTLHours: 24,
			BcryptCost:    4,
		},
	}
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	svc := NewAuthService(cfg, AuthDependencies{
		UserRepo:    users,
		RoleRepo:    fakeRoleRepo{},
		ProfileRepo: profiles,
	}, zap.NewNop())
	return svc, users, profiles
}

func TestRegisterCandidateCreatesProfileAndToken(t *testing.T) {
	svc, users, profiles := newAuthFixture()

	result, err := svc.Register(context.Background(), "Ann Chu", "ann@example.com", "s3cret!", "0912345678", domain.RoleIDCandidate)
	require.NoError(t, err)
	require.Equal(t, domain.RoleCandidate, result.Role)
	require.NotEmpty(t, result.Token)
	require.True(t, result.ExpiresAt.After(time.Now()))

	stored, err := users.GetByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret!", stored.PasswordHash)

	_, err = profiles.GetByUserID(context.Background(), stored.ID)
	require.NoError(t, err)

	claims, err := svc.TokenManager().Verify(result.Token)
	require.NoError(t, err)
	require.Equal(t, "ann@example.com", claims.Subject)
	require.Equal(t, "CANDIDATE", claims.Role)
	require.Equal(t, stored.ID, claims.UserID)
}

func TestRegisterEmployerSkipsProfile(t *testing.T) {
	svc, users, profiles := newAuthFixture()

	result, err := svc.Register(context.Background(), "Bo Tran", "bo@example.com", "s3cret!", "", domain.RoleIDEmployer)
	require.NoError(t, err)
	require.Equal(t, domain.RoleEmployer, result.Role)

	stored, err := users.GetByEmail(context.Background(), "bo@example.com")
	require.NoError(t, err)
	require.Empty(t, profiles.byUserID)
	require.NotZero(t, stored.ID)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "Eve", "eve@example.com", "pw", "", domain.RoleIDAdmin)
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	require.Equal(t, "VALIDATION_FAILED", de.Code)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "Ann", "ann@example.com", "pw1", "", domain.RoleIDCandidate)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Ann Again", "ann@example.com", "pw2", "", domain.RoleIDCandidate)
	require.Error(t, err)
	require.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestLoginSuccess(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "Ann", "ann@example.com", "s3cret!", "", domain.RoleIDCandidate)
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "ann@example.com", "s3cret!")
	require.NoError(t, err)
	require.Equal(t, domain.RoleCandidate, result.Role)

	claims, err := svc.TokenManager().Verify(result.Token)
	require.NoError(t, err)
	require.Equal(t, "ann@example.com", claims.Subject)
}

func TestLoginFailuresAreOpaque(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "Ann", "ann@example.com", "s3cret!", "", domain.RoleIDCandidate)
	require.NoError(t, err)

	_, unknownErr := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, wrongPwErr := svc.Login(context.Background(), "ann@example.com", "wrong")

	require.Error(t, unknownErr)
	require.Error(t, wrongPwErr)
	require.Equal(t, unknownErr.Error(), wrongPwErr.Error())
	require.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(unknownErr).Code)
	require.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(wrongPwErr).Code)
}

func TestLoginTokenRoundTripsThroughExtractor(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "Bo", "bo@example.com", "s3cret!", "", domain.RoleIDEmployer)
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "bo@example.com", "s3cret!")
	require.NoError(t, err)

	outcome := auth.NewExtractor(svc.TokenManager()).Extract("Bearer " + result.Token)
	require.True(t, outcome.Ok)
	require.Equal(t, domain.RoleEmployer, outcome.Identity.Role)
	require.Equal(t, result.User.ID, outcome.Identity.UserID)
}
