package domain

// ReactionType is a single-valued sentiment attached to an issue or solution.
// The numeric values are the wire encoding.
type ReactionType int

const (
	ReactionLike        ReactionType = 1
	ReactionDislike     ReactionType = 2
	ReactionCelebrate   ReactionType = 3
	ReactionSupport     ReactionType = 4
	ReactionInsightful  ReactionType = 5
	ReactionAppreciate  ReactionType = 6
	ReactionUnspecified ReactionType = 7
)

// ReactionTypes lists every bucket in wire order.
var ReactionTypes = []ReactionType{
	ReactionLike, ReactionDislike, ReactionCelebrate, ReactionSupport,
	ReactionInsightful, ReactionAppreciate, ReactionUnspecified,
}

var reactionLabels = map[ReactionType]string{
	ReactionLike:        "Like",
	ReactionDislike:     "Dislike",
	ReactionCelebrate:   "Celebrate",
	ReactionSupport:     "Support",
	ReactionInsightful:  "Insightful",
	ReactionAppreciate:  "Appreciate",
	ReactionUnspecified: "Unspecified",
}

var reactionsByLabel = map[string]ReactionType{
	"Like":       ReactionLike,
	"Dislike":    ReactionDislike,
	"Celebrate":  ReactionCelebrate,
	"Support":    ReactionSupport,
	"Insightful": ReactionInsightful,
	"Appreciate": ReactionAppreciate,
}

// ReactionTypeFromLabel maps a human label to its type. Unknown and empty
// labels map to ReactionUnspecified.
func ReactionTypeFromLabel(label string) ReactionType {
	if t, ok := reactionsByLabel[label]; ok {
		return t
	}
	return ReactionUnspecified
}

// ReactionTypeFromCode maps a wire integer to its type. Codes outside 1..6
// map to ReactionUnspecified.
func ReactionTypeFromCode(code int) ReactionType {
	t := ReactionType(code)
	if t >= ReactionLike && t <= ReactionAppreciate {
		return t
	}
	return ReactionUnspecified
}

// Label returns the human label of the reaction type.
func (t ReactionType) Label() string {
	if l, ok := reactionLabels[t]; ok {
		return l
	}
	return reactionLabels[ReactionUnspecified]
}

// Code returns the wire integer of the reaction type.
func (t ReactionType) Code() int {
	if t.IsValid() {
		return int(t)
	}
	return int(ReactionUnspecified)
}

func (t ReactionType) String() string { return t.Label() }

func (t ReactionType) IsValid() bool {
	return t >= ReactionLike && t <= ReactionUnspecified
}

// TargetKind identifies what a reaction is attached to.
type TargetKind string

const (
	TargetIssue    TargetKind = "issue"
	TargetSolution TargetKind = "solution"
)

func (k TargetKind) String() string { return string(k) }

func (k TargetKind) IsValid() bool {
	switch k {
	case TargetIssue, TargetSolution:
		return true
	}
	return false
}

// ViewMode distinguishes browsing a stage from composing a new contribution in it.
type ViewMode string

const (
	ViewBrowse  ViewMode = "browse"
	ViewCompose ViewMode = "compose"
)

func (m ViewMode) String() string { return string(m) }

func (m ViewMode) IsValid() bool {
	switch m {
	case ViewBrowse, ViewCompose:
		return true
	}
	return false
}
