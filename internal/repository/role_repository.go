package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RoleRepository resolves role names for numeric role identifiers. Tokens
// always carry the canonical name looked up here, never the raw id.
type RoleRepository interface {
	GetNameByID(ctx context.Context, id int) (string, error)
}

type roleRepository struct {
	pool *pgxpool.Pool
}

// NewRoleRepository returns a Postgres-backed implementation.
func NewRoleRepository(pool *pgxpool.Pool) RoleRepository {
	return &roleRepository{pool: pool}
}

func (r *roleRepository) GetNameByID(ctx context.Context, id int) (string, error) {
	const query = `SELECT name FROM roles WHERE id=$1`

	var name string
	if err := r.pool.QueryRow(ctx, query, id).Scan(&name); err != nil {
		return "", err
	}
	return name, nil
}
