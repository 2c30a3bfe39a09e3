package stage

import (
	"context"
	"fmt"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/fetch"
)

// CountsByStage returns how many solutions the issue has in each stage. All
// five stages are present in order; empty stages count zero.
func (s *Service) CountsByStage(ctx context.Context, issueID int64) (domain.StageCounts, error) {
	if issueID == 0 {
		return domain.StageCounts{}, domain.NewValidationError("issue_id", "required")
	}

	sparse, err := fetch.Value(ctx, s.fetch, "solutions.count_by_stage", func(ctx context.Context) (map[domain.Stage]int, error) {
		return s.solutions.CountByStage(ctx, issueID)
	})
	if err != nil {
		return domain.StageCounts{}, fmt.Errorf("count solutions by stage: %w", err)
	}

	for st := range sparse {
		if !st.IsValid() {
			s.log.WarnContext(ctx, "solution with unknown stage ignored in counts",
				"issue_id", issueID, "status", int(st))
		}
	}

	return domain.NewStageCounts(sparse), nil
}

// Count tallies an in-memory solution list per stage. Solutions with an
// invalid stage are not counted.
func Count(list []domain.Solution) domain.StageCounts {
	sparse := make(map[domain.Stage]int, len(domain.Stages))
	for _, sol := range list {
		if sol.Stage.IsValid() {
			sparse[sol.Stage]++
		}
	}
	return domain.NewStageCounts(sparse)
}
