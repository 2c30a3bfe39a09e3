package issue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/fetch"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/stage"
)

// CreateSolution contributes a solution to one stage of an issue. The stage
// comes from the status code and is fixed from then on.
func (s *Service) CreateSolution(ctx context.Context, input CreateSolutionInput) (*SolutionResult, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	st, err := stage.Classify(input.Status)
	if err != nil {
		return nil, err
	}

	issueID, err := s.resolve("issue", input.IssueRef)
	if err != nil {
		return nil, err
	}

	if _, err := s.loadIssue(ctx, issueID); err != nil {
		return nil, fmt.Errorf("get issue: %w", err)
	}

	created, err := s.solutions.Create(ctx, domain.Solution{
		ID:       s.ids.NewID(),
		IssueID:  issueID,
		Stage:    st,
		Title:    strings.TrimSpace(input.Title),
		Summary:  input.Summary,
		Content:  input.Content,
		AuthorID: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("create solution: %w", err)
	}

	s.log.InfoContext(ctx, "solution created",
		slog.String("user_id", userID.String()),
		slog.Int64("issue_id", issueID),
		slog.Int64("solution_id", created.ID),
		slog.String("stage", st.Label()),
	)

	out, err := s.solutionResult(*created, domain.EmptyReactionSummary())
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSolution edits the current user's own solution.
func (s *Service) UpdateSolution(ctx context.Context, input UpdateSolutionInput) (*SolutionResult, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	id, err := s.resolve("solution", input.Ref)
	if err != nil {
		return nil, err
	}

	current, err := s.loadSolution(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get solution: %w", err)
	}
	if !current.IsAuthoredBy(userID) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.solutions.Update(ctx, id, input.params())
	if err != nil {
		return nil, fmt.Errorf("update solution: %w", err)
	}

	s.log.InfoContext(ctx, "solution updated",
		slog.String("user_id", userID.String()),
		slog.Int64("solution_id", id),
	)

	target := domain.ReactionTarget{Kind: domain.TargetSolution, ID: id}
	summary, err := fetch.Value(ctx, s.fetch, "solution reactions", func(ctx context.Context) (domain.ReactionSummary, error) {
		return s.reactions.Summary(ctx, target)
	})
	if err != nil {
		return nil, fmt.Errorf("solution reactions: %w", err)
	}

	out, err := s.solutionResult(*updated, summary)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSolution removes the current user's own solution along with its
// reviews and reactions.
func (s *Service) DeleteSolution(ctx context.Context, ref string) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	id, err := s.resolve("solution", ref)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.solutions.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get solution: %w", err)
		}
		if !current.IsAuthoredBy(userID) {
			return domain.ErrForbidden
		}
		if err := s.solutions.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete solution: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "solution deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("solution_id", id),
	)
	return nil
}
