package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/TienDattttt/job-portal-api/internal/auth"
	"github.com/TienDattttt/job-portal-api/internal/config"
	"github.com/TienDattttt/job-portal-api/internal/domain"
	"github.com/TienDattttt/job-portal-api/internal/repository"
	apperrors "github.com/TienDattttt/job-portal-api/pkg/util/errorutil"
)

// AuthResult is returned from login and registration: the account plus a
// freshly issued token the client stores and replays.
type AuthResult struct {
	User      *domain.User
	Role      domain.Role
	Token     string
	ExpiresAt time.Time
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	profiles   repository.ProfileRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	logger     *zap.Logger
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	RoleRepo    repository.RoleRepository
	ProfileRepo repository.ProfileRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		roles:      deps.RoleRepo,
		profiles:   deps.ProfileRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
		logger:     logger,
	}
}

// Register creates a new account and issues its first token. Candidates get
// an empty profile right away. Admin accounts cannot be self-registered.
func (s *AuthService) Register(ctx context.Context, fullName, email, password, phone string, roleID int) (*AuthResult, error) {
	if roleID != domain.RoleIDEmployer && roleID != domain.RoleIDCandidate {
		return nil, apperrors.NewValidationError("invalid role", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	if phone == "" {
		phone = "0000000000"
	}
	user := &domain.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Phone:        phone,
		RoleID:       roleID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if roleID == domain.RoleIDCandidate {
		profile := &domain.CandidateProfile{UserID: user.ID}
		if err := s.profiles.Create(ctx, profile); err != nil {
			return nil, err
		}
	}

	return s.issueFor(ctx, user)
}

// Login authenticates an account by email and password. Every failure mode
// surfaces the same opaque error so callers cannot probe which emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error("credential lookup failed", zap.Error(err))
		}
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.issueFor(ctx, user)
}

func (s *AuthService) issueFor(ctx context.Context, user *domain.User) (*AuthResult, error) {
	roleName, err := s.roles.GetNameByID(ctx, user.RoleID)
	if err != nil {
		s.logger.Error("role lookup failed", zap.Int("role_id", user.RoleID), zap.Error(err))
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	role, ok := domain.CanonicalRole(roleName)
	if !ok {
		s.logger.Error("unknown role name", zap.String("role", roleName))
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.Issue(user.Email, role, user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Role: role, Token: token, ExpiresAt: exp}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
