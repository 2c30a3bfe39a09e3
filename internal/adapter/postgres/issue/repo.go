// Package issue implements the Issue repository using PostgreSQL.
package issue

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/kamrul-CSE-official/ksa-backend/internal/adapter/postgres"
	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
)

// Repo provides issue persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new issue repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type issueRow struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	Content    string    `db:"content"`
	AuthorID   uuid.UUID `db:"author_id"`
	AuthorName string    `db:"author_name"`
	Tags       []string  `db:"tags"`
	LikeCount  int64     `db:"like_count"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r issueRow) toDomain() domain.Issue {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.Issue{
		ID:         r.ID,
		Title:      r.Title,
		Content:    r.Content,
		AuthorID:   r.AuthorID,
		AuthorName: r.AuthorName,
		Tags:       tags,
		LikeCount:  int(r.LikeCount),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

// The like count is derived from live Like reactions on the issue.
const getByIDSQL = `
SELECT
    i.id, i.title, i.content, i.author_id, u.full_name AS author_name, i.tags,
    (SELECT count(*) FROM reactions r
      WHERE r.target_kind = 'issue' AND r.target_id = i.id AND r.reaction_type = 1) AS like_count,
    i.created_at, i.updated_at
FROM issues i
JOIN users u ON u.id = i.author_id
WHERE i.id = $1`

const createSQL = `
INSERT INTO issues (id, title, content, author_id, tags)
VALUES ($1, $2, $3, $4, $5)`

const existsSQL = `SELECT EXISTS(SELECT 1 FROM issues WHERE id = $1)`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// GetByID returns an issue with its author name and like count.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Issue, error) {
	var row issueRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "issue", id)
	}

	issue := row.toDomain()
	return &issue, nil
}

// Exists reports whether an issue with id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, existsSQL, id).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "issue", id)
	}
	return exists, nil
}

// Create inserts an issue and returns it as stored.
func (r *Repo) Create(ctx context.Context, issue domain.Issue) (*domain.Issue, error) {
	tags := issue.Tags
	if tags == nil {
		tags = []string{}
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, createSQL, issue.ID, issue.Title, issue.Content, issue.AuthorID, tags); err != nil {
		return nil, postgres.MapError(err, "issue", issue.ID)
	}

	created, err := r.GetByID(ctx, issue.ID)
	if err != nil {
		return nil, fmt.Errorf("reload issue: %w", err)
	}
	return created, nil
}
