package domain

import "fmt"

// Stage is one of the five ordered argumentation categories. The value is
// the status code persisted on a solution.
type Stage int

const (
	StageRootCause  Stage = 5
	StageAssumption Stage = 6
	StageClaim      Stage = 7
	StageOpinion    Stage = 8
	StageConclusion Stage = 9
)

// Stages lists the stages in their fixed order.
var Stages = [...]Stage{StageRootCause, StageAssumption, StageClaim, StageOpinion, StageConclusion}

const stageCount = len(Stages)

var stageLabels = [stageCount]string{"Root Cause", "Assumption", "Claim", "Opinion", "Conclusion"}

// StageFromStatus returns the stage for a persisted status code.
func StageFromStatus(code int) (Stage, error) {
	s := Stage(code)
	if !s.IsValid() {
		return 0, fmt.Errorf("status %d: %w", code, ErrUnknownStage)
	}
	return s, nil
}

// StageFromIndex returns the stage at position i (0..4) of the fixed order.
func StageFromIndex(i int) (Stage, error) {
	if i < 0 || i >= stageCount {
		return 0, fmt.Errorf("index %d: %w", i, ErrUnknownStage)
	}
	return Stages[i], nil
}

func (s Stage) IsValid() bool {
	return s >= StageRootCause && s <= StageConclusion
}

// Status returns the persisted status code.
func (s Stage) Status() int { return int(s) }

// Index returns the position of the stage in the fixed order (0..4).
func (s Stage) Index() int { return int(s - StageRootCause) }

// Label returns the display label. Invalid stages return an empty string.
func (s Stage) Label() string {
	if !s.IsValid() {
		return ""
	}
	return stageLabels[s.Index()]
}

func (s Stage) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return s.Label()
}

// StageView is the addressable form of a stage in the UI: either browsing
// its contributions or composing a new one.
type StageView struct {
	Mode  ViewMode
	Stage Stage
}

// Browse returns a browse view of s.
func Browse(s Stage) StageView { return StageView{Mode: ViewBrowse, Stage: s} }

// Compose returns a compose view of s.
func Compose(s Stage) StageView { return StageView{Mode: ViewCompose, Stage: s} }

// ParseNavIndex decodes the legacy navigation index: 0..4 browse the stage at
// that index, 5..9 open the composer for stage index-5.
func ParseNavIndex(i int) (StageView, error) {
	switch {
	case i >= 0 && i < stageCount:
		return Browse(Stages[i]), nil
	case i >= stageCount && i < 2*stageCount:
		return Compose(Stages[i-stageCount]), nil
	}
	return StageView{}, fmt.Errorf("navigation index %d: %w", i, ErrUnknownStage)
}

// NavIndex encodes the view back into the legacy navigation index.
func (v StageView) NavIndex() int {
	if v.Mode == ViewCompose {
		return v.Stage.Index() + stageCount
	}
	return v.Stage.Index()
}

// StageCount is the number of solutions an issue has in one stage.
type StageCount struct {
	Stage Stage
	Count int
}

// StageCounts holds one entry per stage in the fixed order. Zero counts are
// present, never omitted.
type StageCounts [stageCount]StageCount

// NewStageCounts builds a complete StageCounts from a sparse map.
func NewStageCounts(sparse map[Stage]int) StageCounts {
	var out StageCounts
	for i, s := range Stages {
		out[i] = StageCount{Stage: s, Count: sparse[s]}
	}
	return out
}

// Get returns the count for s, or 0 for an invalid stage.
func (c StageCounts) Get(s Stage) int {
	if !s.IsValid() {
		return 0
	}
	return c[s.Index()].Count
}

// ByLabel returns the counts keyed by stage label. All five labels are present.
func (c StageCounts) ByLabel() map[string]int {
	out := make(map[string]int, stageCount)
	for _, sc := range c {
		out[sc.Stage.Label()] = sc.Count
	}
	return out
}
