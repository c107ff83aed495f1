package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TienDattttt/job-portal-api/internal/domain"
)

// ApplicationRepository defines persistence access for job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	GetByJobAndCandidate(ctx context.Context, jobID, candidateID int64) (*domain.Application, error)
	ListByCandidate(ctx context.Context, candidateID int64) ([]*domain.Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]*domain.Application, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository returns a Postgres-backed implementation.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `id, job_id, candidate_id, cover_letter, cv_path, status, applied_at, updated_at`

func (r *applicationRepository) Create(ctx context.Context, application *domain.Application) error {
	const query = `
        INSERT INTO applications (job_id, candidate_id, cover_letter, cv_path, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, applied_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		application.JobID,
		application.CandidateID,
		application.CoverLetter,
		application.CVPath,
		application.Status,
	).Scan(&application.ID, &application.AppliedAt, &application.UpdatedAt)
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE applications SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id=$1`
	return scanApplication(r.pool.QueryRow(ctx, query, id))
}

func (r *applicationRepository) GetByJobAndCandidate(ctx context.Context, jobID, candidateID int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id=$1 AND candidate_id=$2`
	return scanApplication(r.pool.QueryRow(ctx, query, jobID, candidateID))
}

func (r *applicationRepository) ListByCandidate(ctx context.Context, candidateID int64) ([]*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE candidate_id=$1 ORDER BY applied_at DESC`
	return r.list(ctx, query, candidateID)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID int64) ([]*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id=$1 ORDER BY applied_at DESC`
	return r.list(ctx, query, jobID)
}

func (r *applicationRepository) list(ctx context.Context, query string, arg any) ([]*domain.Application, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []*domain.Application
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		applications = append(applications, application)
	}
	return applications, rows.Err()
}

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var application domain.Application
	if err := row.Scan(
		&application.ID,
		&application.JobID,
		&application.CandidateID,
		&application.CoverLetter,
		&application.CVPath,
		&application.Status,
		&application.AppliedAt,
		&application.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &application, nil
}
