package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TienDattttt/job-portal-api/internal/domain"
)

// StatisticsRepository aggregates recruitment figures per employer.
type StatisticsRepository interface {
	RecruitmentStats(ctx context.Context, employerID int64) (*domain.RecruitmentStats, error)
}

type statisticsRepository struct {
	pool *pgxpool.Pool
}

// NewStatisticsRepository returns a Postgres-backed implementation.
func NewStatisticsRepository(pool *pgxpool.Pool) StatisticsRepository {
	return &statisticsRepository{pool: pool}
}

func (r *statisticsRepository) RecruitmentStats(ctx context.Context, employerID int64) (*domain.RecruitmentStats, error) {
	stats := &domain.RecruitmentStats{
		EmployerID: employerID,
		ByStatus:   make(map[domain.ApplicationStatus]int64),
	}

	const jobsQuery = `
        SELECT COUNT(*), COUNT(*) FILTER (WHERE status='OPEN')
        FROM jobs WHERE employer_id=$1`
	if err := r.pool.QueryRow(ctx, jobsQuery, employerID).Scan(&stats.TotalJobs, &stats.OpenJobs); err != nil {
		return nil, err
	}

	const applicationsQuery = `
        SELECT a.status, COUNT(*)
        FROM applications a
        JOIN jobs j ON j.id = a.job_id
        WHERE j.employer_id=$1
        GROUP BY a.status`
	rows, err := r.pool.Query(ctx, applicationsQuery, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status domain.ApplicationStatus
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
		stats.TotalApplications += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const interviewsQuery = `
        SELECT COUNT(*)
        FROM interviews i
        JOIN applications a ON a.id = i.application_id
        JOIN jobs j ON j.id = a.job_id
        WHERE j.employer_id=$1 AND i.status='SCHEDULED'`
	if err := r.pool.QueryRow(ctx, interviewsQuery, employerID).Scan(&stats.InterviewsPlanned); err != nil {
		return nil, err
	}

	return stats, nil
}
