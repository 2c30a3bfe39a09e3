package issue

import "github.com/kamrul-CSE-official/ksa-backend/internal/domain"

// IssueResult is an issue as returned to callers: the entity, its opaque
// reference and the viewer's reaction summary.
type IssueResult struct {
	Issue     domain.Issue
	Ref       string
	Reactions domain.ReactionSummary
}

// SolutionResult is a solution as returned to callers.
type SolutionResult struct {
	Solution  domain.Solution
	Ref       string
	IssueRef  string
	Reactions domain.ReactionSummary
	// Top marks the issue's top solution on a board.
	Top bool
}

// BoardResult is one stage view of an issue.
type BoardResult struct {
	Issue  IssueResult
	View   domain.StageView
	Counts domain.StageCounts
	// Solutions is ranked by review consensus. It is empty for compose views.
	Solutions []SolutionResult
	// TopRef references the issue's top solution across every stage, or is
	// empty when the issue has no solutions.
	TopRef string
}
