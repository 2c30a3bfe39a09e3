package stage

import (
	"context"
	"fmt"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/fetch"
)

// FilterByDepartment lists the issue's solutions in one stage, restricted to
// authors of department. An empty department returns the whole stage.
func (s *Service) FilterByDepartment(ctx context.Context, issueID int64, st domain.Stage, department string) ([]domain.Solution, error) {
	if issueID == 0 {
		return nil, domain.NewValidationError("issue_id", "required")
	}
	if !st.IsValid() {
		return nil, fmt.Errorf("filter by department: status %d: %w", int(st), domain.ErrUnknownStage)
	}

	filter := domain.SolutionFilter{IssueID: issueID, Stage: &st, Department: department}

	list, err := fetch.Value(ctx, s.fetch, "solutions.list", func(ctx context.Context) ([]domain.Solution, error) {
		return s.solutions.List(ctx, filter)
	})
	if err != nil {
		return nil, fmt.Errorf("list solutions: %w", err)
	}

	if list == nil {
		list = []domain.Solution{}
	}
	return list, nil
}

// FilterSolutions keeps the solutions in stage st whose author belongs to
// department, preserving order. An empty department keeps the whole stage.
func FilterSolutions(list []domain.Solution, st domain.Stage, department string) []domain.Solution {
	filter := domain.SolutionFilter{Stage: &st, Department: department}

	out := make([]domain.Solution, 0, len(list))
	for _, sol := range list {
		if filter.Matches(sol) {
			out = append(out, sol)
		}
	}
	return out
}
