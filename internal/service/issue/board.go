package issue

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/fetch"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/ranking"
	"github.com/kamrul-CSE-official/ksa-backend/pkg/ctxutil"
)

// Board resolves an issue and assembles one stage view of it: counts for
// every stage, the stage's solutions ranked by review consensus, and the
// issue-wide top solution. Compose views carry counts but no list.
func (s *Service) Board(ctx context.Context, input BoardInput) (*BoardResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !input.View.Stage.IsValid() {
		return nil, fmt.Errorf("stage %d: %w", int(input.View.Stage), domain.ErrUnknownStage)
	}

	department := input.Department
	if input.OwnDepartment {
		d, err := s.callerDepartment(ctx)
		if err != nil {
			return nil, err
		}
		department = d
	}

	issueID, err := s.resolve("issue", input.IssueRef)
	if err != nil {
		return nil, err
	}

	issue, err := s.issueResult(ctx, issueID, input.IssueRef)
	if err != nil {
		return nil, err
	}

	var (
		counts domain.StageCounts
		listed []domain.Solution
		all    []domain.Solution
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = s.stages.CountsByStage(gctx, issueID)
		if err != nil {
			return fmt.Errorf("stage counts: %w", err)
		}
		return nil
	})
	if input.View.Mode == domain.ViewBrowse {
		g.Go(func() error {
			var err error
			listed, err = s.stages.FilterByDepartment(gctx, issueID, input.View.Stage, department)
			if err != nil {
				return fmt.Errorf("stage solutions: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		var err error
		all, err = fetch.Value(gctx, s.fetch, "solutions", func(ctx context.Context) ([]domain.Solution, error) {
			return s.solutions.List(ctx, domain.SolutionFilter{IssueID: issueID})
		})
		if err != nil {
			return fmt.Errorf("issue solutions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &BoardResult{
		Issue:     *issue,
		View:      input.View,
		Counts:    counts,
		Solutions: []SolutionResult{},
	}

	top := ranking.TopSolution(all)
	if top != nil {
		if out.TopRef, err = s.ref(top.ID); err != nil {
			return nil, err
		}
	}

	if len(listed) == 0 {
		return out, nil
	}

	ranked, summaries, err := s.rankListed(ctx, listed)
	if err != nil {
		return nil, err
	}

	out.Solutions = make([]SolutionResult, 0, len(ranked))
	for i, sol := range ranked {
		res, err := s.solutionResult(sol, summaries[i])
		if err != nil {
			return nil, err
		}
		res.Top = top != nil && sol.ID == top.ID
		out.Solutions = append(out.Solutions, res)
	}

	return out, nil
}

// callerDepartment returns the department claimed by the caller's token,
// falling back to the caller's directory record when the token has none.
func (s *Service) callerDepartment(ctx context.Context) (string, error) {
	if dept, ok := ctxutil.DepartmentFromCtx(ctx); ok {
		return dept, nil
	}

	userID, err := currentUser(ctx)
	if err != nil {
		return "", err
	}
	u, err := fetch.Value(ctx, s.fetch, "user", func(ctx context.Context) (*domain.User, error) {
		return s.users.GetByID(ctx, userID)
	})
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	return u.Department, nil
}

// rankListed attaches reviews to the listed solutions through batched loads,
// ranks them and returns each ranked solution's reaction summary at the
// same index. Reactions are display-only and take no part in the order.
func (s *Service) rankListed(ctx context.Context, listed []domain.Solution) ([]domain.Solution, []domain.ReactionSummary, error) {
	ids := make([]int64, len(listed))
	for i, sol := range listed {
		ids[i] = sol.ID
	}

	loaders := s.newBoardLoaders()
	reviewsThunk := loaders.reviews.LoadMany(ctx, ids)
	reactionsThunk := loaders.reactions.LoadMany(ctx, ids)

	reviews, errs := reviewsThunk()
	if err := firstError(errs); err != nil {
		return nil, nil, fmt.Errorf("load reviews: %w", err)
	}
	summaries, errs := reactionsThunk()
	if err := firstError(errs); err != nil {
		return nil, nil, fmt.Errorf("load reactions: %w", err)
	}

	withReviews := make([]domain.Solution, len(listed))
	byID := make(map[int64]domain.ReactionSummary, len(listed))
	for i, sol := range listed {
		sol.Reviews = reviews[i]
		withReviews[i] = sol
		byID[sol.ID] = summaries[i]
	}

	ranked := ranking.Rank(withReviews)
	ordered := make([]domain.ReactionSummary, len(ranked))
	for i, sol := range ranked {
		ordered[i] = byID[sol.ID]
	}
	return ranked, ordered, nil
}

// StageCounts returns the number of solutions in each stage of an issue.
func (s *Service) StageCounts(ctx context.Context, issueRef string) (domain.StageCounts, error) {
	issueID, err := s.resolve("issue", issueRef)
	if err != nil {
		return domain.StageCounts{}, err
	}
	if _, err := s.loadIssue(ctx, issueID); err != nil {
		return domain.StageCounts{}, fmt.Errorf("get issue: %w", err)
	}

	counts, err := s.stages.CountsByStage(ctx, issueID)
	if err != nil {
		return domain.StageCounts{}, fmt.Errorf("stage counts: %w", err)
	}
	return counts, nil
}
