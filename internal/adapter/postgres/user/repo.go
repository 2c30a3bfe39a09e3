// Package user reads the user directory the identity system maintains.
package user

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/kamrul-CSE-official/ksa-backend/internal/adapter/postgres"
	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
)

// Repo provides read access to users backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID        uuid.UUID `db:"id"`
	FullName  string    `db:"full_name"`
	DeptName  string    `db:"dept_name"`
	CreatedAt time.Time `db:"created_at"`
}

const getByIDSQL = `
SELECT id, full_name, dept_name, created_at
FROM users
WHERE id = $1`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &domain.User{
		ID:         row.ID,
		FullName:   row.FullName,
		Department: row.DeptName,
		CreatedAt:  row.CreatedAt,
	}, nil
}
