package reaction

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
	"github.com/kamrul-CSE-official/ksa-backend/pkg/ctxutil"
)

// React applies the current user's reaction to a target and returns the
// target's new summary. Two rapid toggles from the same user may resolve in
// either order; the last committed write wins.
func (s *Service) React(ctx context.Context, input ReactInput) (domain.ReactionSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ReactionSummary{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.ReactionSummary{}, err
	}

	var out Outcome
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rows, err := s.reactions.ListByTarget(txCtx, input.Target)
		if err != nil {
			return fmt.Errorf("list reactions: %w", err)
		}

		out = Apply(rows, userID, input.Target, input.Type)

		switch out.Action {
		case ActionInsert, ActionReplace:
			if err := s.reactions.Upsert(txCtx, out.Reaction); err != nil {
				return fmt.Errorf("upsert reaction: %w", err)
			}
		case ActionRemove:
			if err := s.reactions.Delete(txCtx, userID, input.Target); err != nil {
				return fmt.Errorf("delete reaction: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return domain.ReactionSummary{}, err
	}

	s.log.InfoContext(ctx, "reaction applied",
		slog.String("user_id", userID.String()),
		slog.String("target_kind", input.Target.Kind.String()),
		slog.Int64("target_id", input.Target.ID),
		slog.String("action", string(out.Action)),
		slog.String("type", out.Reaction.Type.Label()),
	)

	return out.Summary, nil
}

// Summary returns the reaction summary of one target as seen by the current
// user. Anonymous callers get a summary without UserReaction.
func (s *Service) Summary(ctx context.Context, target domain.ReactionTarget) (domain.ReactionSummary, error) {
	rows, err := s.reactions.ListByTarget(ctx, target)
	if err != nil {
		return domain.ReactionSummary{}, fmt.Errorf("list reactions: %w", err)
	}

	viewer, _ := ctxutil.UserIDFromCtx(ctx)
	return Summarize(rows, viewer), nil
}

// Summaries returns summaries for many targets of one kind in a single query.
// Every requested id has an entry.
func (s *Service) Summaries(ctx context.Context, kind domain.TargetKind, ids []int64) (map[int64]domain.ReactionSummary, error) {
	out := make(map[int64]domain.ReactionSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := s.reactions.ListByTargets(ctx, kind, ids)
	if err != nil {
		return nil, fmt.Errorf("list reactions: %w", err)
	}

	grouped := make(map[int64][]domain.Reaction, len(ids))
	for _, r := range rows {
		grouped[r.TargetID] = append(grouped[r.TargetID], r)
	}

	viewer, _ := ctxutil.UserIDFromCtx(ctx)
	for _, id := range ids {
		out[id] = Summarize(grouped[id], viewer)
	}

	return out, nil
}
