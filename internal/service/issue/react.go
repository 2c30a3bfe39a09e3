package issue

import (
	"context"
	"fmt"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/reaction"
)

// ReactToIssue applies the current user's reaction to an issue.
func (s *Service) ReactToIssue(ctx context.Context, issueRef string, t domain.ReactionType) (domain.ReactionSummary, error) {
	if _, err := currentUser(ctx); err != nil {
		return domain.ReactionSummary{}, err
	}

	id, err := s.resolve("issue", issueRef)
	if err != nil {
		return domain.ReactionSummary{}, err
	}
	if _, err := s.loadIssue(ctx, id); err != nil {
		return domain.ReactionSummary{}, fmt.Errorf("get issue: %w", err)
	}
	return s.react(ctx, domain.ReactionTarget{Kind: domain.TargetIssue, ID: id}, t)
}

// ReactToSolution applies the current user's reaction to a solution.
func (s *Service) ReactToSolution(ctx context.Context, solutionRef string, t domain.ReactionType) (domain.ReactionSummary, error) {
	if _, err := currentUser(ctx); err != nil {
		return domain.ReactionSummary{}, err
	}

	id, err := s.resolve("solution", solutionRef)
	if err != nil {
		return domain.ReactionSummary{}, err
	}
	if _, err := s.loadSolution(ctx, id); err != nil {
		return domain.ReactionSummary{}, fmt.Errorf("get solution: %w", err)
	}
	return s.react(ctx, domain.ReactionTarget{Kind: domain.TargetSolution, ID: id}, t)
}

func (s *Service) react(ctx context.Context, target domain.ReactionTarget, t domain.ReactionType) (domain.ReactionSummary, error) {
	summary, err := s.reactions.React(ctx, reaction.ReactInput{Target: target, Type: t})
	if err != nil {
		return domain.ReactionSummary{}, fmt.Errorf("react: %w", err)
	}
	return summary, nil
}
