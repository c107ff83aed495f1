package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TienDattttt/job-portal-api/internal/domain"
)

// EmployerRepository defines persistence access for employer company records.
type EmployerRepository interface {
	Create(ctx context.Context, employer *domain.Employer) error
	Update(ctx context.Context, employer *domain.Employer) error
	GetByID(ctx context.Context, id int64) (*domain.Employer, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Employer, error)
}

type employerRepository struct {
	pool *pgxpool.Pool
}

// NewEmployerRepository returns a Postgres-backed implementation.
func NewEmployerRepository(pool *pgxpool.Pool) EmployerRepository {
	return &employerRepository{pool: pool}
}

func (r *employerRepository) Create(ctx context.Context, employer *domain.Employer) error {
	const query = `
        INSERT INTO employers (user_id, company_name, website, address, logo_path, description)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		employer.UserID,
		employer.CompanyName,
		employer.Website,
		employer.Address,
		employer.LogoPath,
		employer.Description,
	).Scan(&employer.ID, &employer.CreatedAt, &employer.UpdatedAt)
}

func (r *employerRepository) Update(ctx context.Context, employer *domain.Employer) error {
	const query = `
        UPDATE employers SET company_name=$1, website=$2, address=$3, logo_path=$4, description=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		employer.CompanyName,
		employer.Website,
		employer.Address,
		employer.LogoPath,
		employer.Description,
		employer.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employerRepository) GetByID(ctx context.Context, id int64) (*domain.Employer, error) {
	const query = `
        SELECT id, user_id, company_name, website, address, logo_path, description, created_at, updated_at
        FROM employers WHERE id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *employerRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Employer, error) {
	const query = `
        SELECT id, user_id, company_name, website, address, logo_path, description, created_at, updated_at
        FROM employers WHERE user_id=$1`

	return r.scanOne(r.pool.QueryRow(ctx, query, userID))
}

func (r *employerRepository) scanOne(row pgx.Row) (*domain.Employer, error) {
	var employer domain.Employer
	if err := row.Scan(
		&employer.ID,
		&employer.UserID,
		&employer.CompanyName,
		&employer.Website,
		&employer.Address,
		&employer.LogoPath,
		&employer.Description,
		&employer.CreatedAt,
		&employer.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &employer, nil
}
