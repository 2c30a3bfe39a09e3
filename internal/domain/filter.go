package domain

// SolutionFilter narrows a solution listing for one issue.
type SolutionFilter struct {
	IssueID int64
	// Stage restricts the list to one stage when set.
	Stage *Stage
	// Department restricts the list to authors of that department when
	// non-empty. Matching is exact and case-sensitive.
	Department string
}

// Matches reports whether s passes the filter. IssueID is not checked.
func (f SolutionFilter) Matches(s Solution) bool {
	if f.Stage != nil && s.Stage != *f.Stage {
		return false
	}
	if f.Department != "" && s.Department != f.Department {
		return false
	}
	return true
}
