package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/TienDattttt/job-portal-api/internal/auth"
	"github.com/TienDattttt/job-portal-api/internal/domain"
	"github.com/TienDattttt/job-portal-api/internal/repository"
	apperrors "github.com/TienDattttt/job-portal-api/pkg/util/errorutil"
)

const statsCacheTTL = 5 * time.Minute

// StatisticsService computes recruitment statistics for employers, with a
// short-lived Redis cache in front of the aggregate queries.
type StatisticsService struct {
	stats     repository.StatisticsRepository
	employers repository.EmployerRepository
	cache     *redis.Client
	logger    *zap.Logger
}

// NewStatisticsService builds the service. cache may be nil; the service
// then always hits the database.
func NewStatisticsService(stats repository.StatisticsRepository, employers repository.EmployerRepository, cache *redis.Client, logger *zap.Logger) *StatisticsService {
	return &StatisticsService{stats: stats, employers: employers, cache: cache, logger: logger}
}

// Recruitment returns aggregates for the calling employer's records.
func (s *StatisticsService) Recruitment(ctx context.Context, identity auth.Identity) (*domain.RecruitmentStats, error) {
	employer, err := s.employers.GetByUserID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employer", nil)
		}
		return nil, err
	}
	return s.recruitmentFor(ctx, employer.ID)
}

// RecruitmentForEmployer returns aggregates for a specific employer; admins
// only.
func (s *StatisticsService) RecruitmentForEmployer(ctx context.Context, identity auth.Identity, employerID int64) (*domain.RecruitmentStats, error) {
	if identity.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("statistics belong to another employer")
	}
	return s.recruitmentFor(ctx, employerID)
}

func (s *StatisticsService) recruitmentFor(ctx context.Context, employerID int64) (*domain.RecruitmentStats, error) {
	key := fmt.Sprintf("stats:recruitment:%d", employerID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var stats domain.RecruitmentStats
			if err := json.Unmarshal(cached, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.stats.RecruitmentStats(ctx, employerID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, key, encoded, statsCacheTTL).Err(); err != nil {
				s.logger.Warn("stats cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}
