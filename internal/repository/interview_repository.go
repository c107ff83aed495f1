package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TienDattttt/job-portal-api/internal/domain"
)

// InterviewRepository defines persistence access for interview appointments.
type InterviewRepository interface {
	Create(ctx context.Context, interview *domain.Interview) error
	Update(ctx context.Context, interview *domain.Interview) error
	GetByID(ctx context.Context, id int64) (*domain.Interview, error)
	ListByApplication(ctx context.Context, applicationID int64) ([]*domain.Interview, error)
}

type interviewRepository struct {
	pool *pgxpool.Pool
}

// NewInterviewRepository returns a Postgres-backed implementation.
func NewInterviewRepository(pool *pgxpool.Pool) InterviewRepository {
	return &interviewRepository{pool: pool}
}

func (r *interviewRepository) Create(ctx context.Context, interview *domain.Interview) error {
	const query = `
        INSERT INTO interviews (application_id, scheduled_at, location, note, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		interview.ApplicationID,
		interview.ScheduledAt,
		interview.Location,
		interview.Note,
		interview.Status,
	).Scan(&interview.ID, &interview.CreatedAt, &interview.UpdatedAt)
}

func (r *interviewRepository) Update(ctx context.Context, interview *domain.Interview) error {
	const query = `
        UPDATE interviews SET scheduled_at=$1, location=$2, note=$3, status=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		interview.ScheduledAt,
		interview.Location,
		interview.Note,
		interview.Status,
		interview.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *interviewRepository) GetByID(ctx context.Context, id int64) (*domain.Interview, error) {
	const query = `
        SELECT id, application_id, scheduled_at, location, note, status, created_at, updated_at
        FROM interviews WHERE id=$1`

	var interview domain.Interview
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&interview.ID,
		&interview.ApplicationID,
		&interview.ScheduledAt,
		&interview.Location,
		&interview.Note,
		&interview.Status,
		&interview.CreatedAt,
		&interview.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *interviewRepository) ListByApplication(ctx context.Context, applicationID int64) ([]*domain.Interview, error) {
	const query = `
        SELECT id, application_id, scheduled_at, location, note, status, created_at, updated_at
        FROM interviews WHERE application_id=$1 ORDER BY scheduled_at`

	rows, err := r.pool.Query(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []*domain.Interview
	for rows.Next() {
		var interview domain.Interview
		if err := rows.Scan(
			&interview.ID,
			&interview.ApplicationID,
			&interview.ScheduledAt,
			&interview.Location,
			&interview.Note,
			&interview.Status,
			&interview.CreatedAt,
			&interview.UpdatedAt,
		); err != nil {
			return nil, err
		}
		interviews = append(interviews, &interview)
	}
	return interviews, rows.Err()
}
