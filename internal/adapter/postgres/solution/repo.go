// Package solution implements the Solution repository using PostgreSQL.
// Listings are built with squirrel so the stage and department filters
// compose onto one base query.
package solution

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

// Repo provides solution persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new solution repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type solutionRow struct {
	ID         int64     `db:"id"`
	IssueID    int64     `db:"issue_id"`
	Status     int16     `db:"status"`
	Title      string    `db:"title"`
	Summary    string    `db:"summary"`
	Content    string    `db:"content"`
	AuthorID   uuid.UUID `db:"author_id"`
	AuthorName string    `db:"author_name"`
	Department string    `db:"department"`
	Rating     int64     `db:"rating"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r solutionRow) toDomain() (domain.Solution, error) {
	st, err := domain.StageFromStatus(int(r.Status))
	if err != nil {
		return domain.Solution{}, fmt.Errorf("solution %d: %w: %w", r.ID, domain.ErrCorruptRecord, err)
	}
	return domain.Solution{
		ID:         r.ID,
		IssueID:    r.IssueID,
		Stage:      st,
		Title:      r.Title,
		Summary:    r.Summary,
		Content:    r.Content,
		AuthorID:   r.AuthorID,
		AuthorName: r.AuthorName,
		Department: r.Department,
		Rating:     int(r.Rating),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

// ---------------------------------------------------------------------------
// Query building
// ---------------------------------------------------------------------------

// Rating is the raw sum of review ratings.
var selectColumns = []string{
	"s.id", "s.issue_id", "s.status", "s.title", "s.summary", "s.content", "s.author_id",
	"u.full_name AS author_name", "u.dept_name AS department",
	"COALESCE((SELECT sum(rv.rating) FROM reviews rv WHERE rv.solution_id = s.id), 0) AS rating",
	"s.created_at", "s.updated_at",
}

func selectBuilder() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(selectColumns...).
		From("solutions s").
		Join("users u ON u.id = s.author_id")
}

func listQuery(filter domain.SolutionFilter) squirrel.SelectBuilder {
	q := selectBuilder().Where(squirrel.Eq{"s.issue_id": filter.IssueID})
	if filter.Stage != nil {
		q = q.Where(squirrel.Eq{"s.status": int16(filter.Stage.Status())})
	}
	if filter.Department != "" {
		q = q.Where(squirrel.Eq{"u.dept_name": filter.Department})
	}
	return q.OrderBy("s.created_at", "s.id")
}

func scanAll(rows []solutionRow) ([]domain.Solution, error) {
	out := make([]domain.Solution, 0, len(rows))
	for _, row := range rows {
		s, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a solution with author details and raw rating.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Solution, error) {
	sql, args, err := selectBuilder().Where(squirrel.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get solution: %w", err)
	}

	var row solutionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "solution", id)
	}

	s, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns the issue's solutions matching filter, oldest first. Returns
// an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.SolutionFilter) ([]domain.Solution, error) {
	sql, args, err := listQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list solutions: %w", err)
	}

	var rows []solutionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "solutions of issue", filter.IssueID)
	}

	return scanAll(rows)
}

const countByStageSQL = `
SELECT status, count(*) AS n
FROM solutions
WHERE issue_id = $1
GROUP BY status`

// CountByStage returns the number of solutions per stage. Stages without
// solutions are absent from the map.
func (r *Repo) CountByStage(ctx context.Context, issueID int64) (map[domain.Stage]int, error) {
	var rows []struct {
		Status int16 `db:"status"`
		N      int64 `db:"n"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, countByStageSQL, issueID); err != nil {
		return nil, postgres.MapError(err, "solution counts of issue", issueID)
	}

	out := make(map[domain.Stage]int, len(rows))
	for _, row := range rows {
		out[domain.Stage(row.Status)] = int(row.N)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a solution and returns it as stored.
func (r *Repo) Create(ctx context.Context, s domain.Solution) (*domain.Solution, error) {
	sql, args, err := postgres.Builder().
		Insert("solutions").
		Columns("id", "issue_id", "status", "title", "summary", "content", "author_id").
		Values(s.ID, s.IssueID, int16(s.Stage.Status()), s.Title, s.Summary, s.Content, s.AuthorID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert solution: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "solution", s.ID)
	}

	return r.GetByID(ctx, s.ID)
}

// Update applies the non-nil fields of params. The stage is never updated.
func (r *Repo) Update(ctx context.Context, id int64, params domain.SolutionUpdateParams) (*domain.Solution, error) {
	q := postgres.Builder().
		Update("solutions").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	if params.Title != nil {
		q = q.Set("title", *params.Title)
	}
	if params.Summary != nil {
		q = q.Set("summary", *params.Summary)
	}
	if params.Content != nil {
		q = q.Set("content", *params.Content)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update solution: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "solution", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("solution %d: %w", id, domain.ErrNotFound)
	}

	return r.GetByID(ctx, id)
}

const (
	deleteReactionsSQL = `DELETE FROM reactions WHERE target_kind = 'solution' AND target_id = $1`
	deleteSQL          = `DELETE FROM solutions WHERE id = $1`
)

// Delete removes a solution, its reviews (by cascade) and its reactions.
// Call inside a transaction so the two statements commit together.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteReactionsSQL, id); err != nil {
		return postgres.MapError(err, "reactions of solution", id)
	}

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "solution", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("solution %d: %w", id, domain.ErrNotFound)
	}
	return nil
}
