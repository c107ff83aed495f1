package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TienDattttt/job-portal-api/internal/domain"
)

// ProfileRepository defines persistence access for candidate profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.CandidateProfile) error
	Update(ctx context.Context, profile *domain.CandidateProfile) error
	GetByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error)
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	const query = `
        INSERT INTO candidate_profiles (user_id, birth_date, address, gender, education, skills, experience, cv_path, summary)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		profile.UserID,
		profile.BirthDate,
		profile.Address,
		profile.Gender,
		profile.Education,
		profile.Skills,
		profile.Experience,
		profile.CVPath,
		profile.Summary,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.CandidateProfile) error {
	const query = `
        UPDATE candidate_profiles
        SET birth_date=$1, address=$2, gender=$3, education=$4, skills=$5, experience=$6, cv_path=$7, summary=$8, updated_at=NOW()
        WHERE user_id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		profile.BirthDate,
		profile.Address,
		profile.Gender,
		profile.Education,
		profile.Skills,
		profile.Experience,
		profile.CVPath,
		profile.Summary,
		profile.UserID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.CandidateProfile, error) {
	const query = `
        SELECT id, user_id, birth_date, address, gender, education, skills, experience, cv_path, summary, created_at, updated_at
        FROM candidate_profiles WHERE user_id=$1`

	var profile domain.CandidateProfile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.BirthDate,
		&profile.Address,
		&profile.Gender,
		&profile.Education,
		&profile.Skills,
		&profile.Experience,
		&profile.CVPath,
		&profile.Summary,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}
