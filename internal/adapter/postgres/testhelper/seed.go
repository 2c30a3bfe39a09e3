package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
)

var seq atomic.Int64

func init() {
	seq.Store(time.Now().UnixNano() / 1000)
}

// NextID returns a process-unique numeric id for seeded rows.
func NextID() int64 {
	return seq.Add(1)
}

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user in the given department.
func SeedUser(t *testing.T, pool *pgxpool.Pool, department string) domain.User {
	t.Helper()

	user := domain.User{
		ID:         uuid.New(),
		FullName:   "Test User " + uniqueSuffix(),
		Department: department,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, full_name, dept_name, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.FullName, user.Department, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedIssue creates an issue authored by author.
func SeedIssue(t *testing.T, pool *pgxpool.Pool, author domain.User) domain.Issue {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	issue := domain.Issue{
		ID:         NextID(),
		Title:      "Issue " + uniqueSuffix(),
		Content:    "Something is broken",
		AuthorID:   author.ID,
		AuthorName: author.FullName,
		Tags:       []string{"test"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO issues (id, title, content, author_id, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		issue.ID, issue.Title, issue.Content, issue.AuthorID, issue.Tags, issue.CreatedAt, issue.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIssue: %v", err)
	}

	return issue
}

// SeedSolution creates a solution in stage st. createdAt orders solutions
// within a stage.
func SeedSolution(t *testing.T, pool *pgxpool.Pool, issueID int64, author domain.User, st domain.Stage, createdAt time.Time) domain.Solution {
	t.Helper()

	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	sol := domain.Solution{
		ID:         NextID(),
		IssueID:    issueID,
		Stage:      st,
		Title:      st.Label() + " " + uniqueSuffix(),
		Summary:    "summary",
		Content:    "content",
		AuthorID:   author.ID,
		AuthorName: author.FullName,
		Department: author.Department,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO solutions (id, issue_id, status, title, summary, content, author_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		sol.ID, sol.IssueID, sol.Stage.Status(), sol.Title, sol.Summary, sol.Content, sol.AuthorID, sol.CreatedAt, sol.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSolution: %v", err)
	}

	return sol
}

// SeedReview adds a review of rating by author.
func SeedReview(t *testing.T, pool *pgxpool.Pool, solutionID int64, author domain.User, rating int) domain.Review {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rev := domain.Review{
		ID:         NextID(),
		SolutionID: solutionID,
		AuthorID:   author.ID,
		Rating:     rating,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO reviews (id, solution_id, author_id, rating, comment, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rev.ID, rev.SolutionID, rev.AuthorID, rev.Rating, rev.Comment, rev.CreatedAt, rev.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReview: %v", err)
	}

	return rev
}
