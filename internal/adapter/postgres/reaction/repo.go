// Package reaction implements the Reaction repository using PostgreSQL.
// Each (user, target) pair holds at most one row: the user's live reaction.
package reaction

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

// Repo provides reaction persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new reaction repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type reactionRow struct {
	UserID       uuid.UUID `db:"user_id"`
	TargetKind   string    `db:"target_kind"`
	TargetID     int64     `db:"target_id"`
	ReactionType int16     `db:"reaction_type"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r reactionRow) toDomain() domain.Reaction {
	return domain.Reaction{
		UserID:     r.UserID,
		TargetKind: domain.TargetKind(r.TargetKind),
		TargetID:   r.TargetID,
		Type:       domain.ReactionTypeFromCode(int(r.ReactionType)),
		CreatedAt:  r.CreatedAt,
	}
}

var columns = []string{"user_id", "target_kind", "target_id", "reaction_type", "created_at"}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer) ([]domain.Reaction, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From("reactions").
		Where(where).
		OrderBy("target_id", "created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reactions: %w", err)
	}

	var rows []reactionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list reactions: %w", err)
	}

	out := make([]domain.Reaction, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ListByTarget returns the live reactions on one target.
func (r *Repo) ListByTarget(ctx context.Context, target domain.ReactionTarget) ([]domain.Reaction, error) {
	return r.list(ctx, squirrel.Eq{"target_kind": string(target.Kind), "target_id": target.ID})
}

// ListByTargets returns the live reactions on many targets of one kind.
func (r *Repo) ListByTargets(ctx context.Context, kind domain.TargetKind, ids []int64) ([]domain.Reaction, error) {
	if len(ids) == 0 {
		return []domain.Reaction{}, nil
	}
	return r.list(ctx, squirrel.Eq{"target_kind": string(kind), "target_id": ids})
}

const upsertSQL = `
INSERT INTO reactions (user_id, target_kind, target_id, reaction_type)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, target_kind, target_id) DO UPDATE
SET reaction_type = EXCLUDED.reaction_type, created_at = now()`

// Upsert makes r the user's live reaction on its target.
func (r *Repo) Upsert(ctx context.Context, rx domain.Reaction) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, upsertSQL,
		rx.UserID, string(rx.TargetKind), rx.TargetID, int16(rx.Type.Code()))
	if err != nil {
		return postgres.MapError(err, "reaction on "+rx.TargetKind.String(), rx.TargetID)
	}
	return nil
}

const deleteSQL = `
DELETE FROM reactions
WHERE user_id = $1 AND target_kind = $2 AND target_id = $3`

// Delete removes the user's reaction on target. Deleting a reaction that
// does not exist is not an error.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, target domain.ReactionTarget) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, userID, string(target.Kind), target.ID)
	if err != nil {
		return postgres.MapError(err, "reaction on "+target.Kind.String(), target.ID)
	}
	return nil
}
