// Package review implements the Review repository using PostgreSQL.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/kamrul-CSE-official/ksa-backend/internal/adapter/postgres"
	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
)

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new review repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type reviewRow struct {
	ID         int64     `db:"id"`
	SolutionID int64     `db:"solution_id"`
	AuthorID   uuid.UUID `db:"author_id"`
	Rating     int16     `db:"rating"`
	Comment    string    `db:"comment"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r reviewRow) toDomain() domain.Review {
	return domain.Review{
		ID:         r.ID,
		SolutionID: r.SolutionID,
		AuthorID:   r.AuthorID,
		Rating:     int(r.Rating),
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toDomain(rows []reviewRow) []domain.Review {
	out := make([]domain.Review, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out
}

var columns = []string{"id", "solution_id", "author_id", "rating", "comment", "created_at", "updated_at"}

// A second review by the same author replaces the first; the original id
// and created_at are kept.
const upsertSQL = `
INSERT INTO reviews (id, solution_id, author_id, rating, comment)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (solution_id, author_id) DO UPDATE
SET rating = EXCLUDED.rating, comment = EXCLUDED.comment, updated_at = now()
RETURNING id, solution_id, author_id, rating, comment, created_at, updated_at`

// Upsert stores the author's review of a solution, replacing any earlier one.
func (r *Repo) Upsert(ctx context.Context, rev domain.Review) (*domain.Review, error) {
	var row reviewRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, upsertSQL,
		rev.ID, rev.SolutionID, rev.AuthorID, int16(rev.Rating), rev.Comment)
	if err != nil {
		return nil, postgres.MapError(err, "review of solution", rev.SolutionID)
	}

	out := row.toDomain()
	return &out, nil
}

// ListBySolution returns a solution's reviews, oldest first.
func (r *Repo) ListBySolution(ctx context.Context, solutionID int64) ([]domain.Review, error) {
	return r.ListBySolutions(ctx, []int64{solutionID})
}

// ListBySolutions returns the reviews of many solutions in one query,
// ordered by solution then age. Used by the board's batch loader.
func (r *Repo) ListBySolutions(ctx context.Context, solutionIDs []int64) ([]domain.Review, error) {
	if len(solutionIDs) == 0 {
		return []domain.Review{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From("reviews").
		Where(squirrel.Eq{"solution_id": solutionIDs}).
		OrderBy("solution_id", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reviews: %w", err)
	}

	var rows []reviewRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return toDomain(rows), nil
}
