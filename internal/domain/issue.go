package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the slice of the external user directory this service reads.
type User struct {
	ID         uuid.UUID
	FullName   string
	Department string
	CreatedAt  time.Time
}

// Issue is a raised topic that solutions are contributed to.
type Issue struct {
	ID         int64
	Title      string
	Content    string
	AuthorID   uuid.UUID
	AuthorName string
	Tags       []string
	LikeCount  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Solution is a contribution to one stage of one issue.
type Solution struct {
	ID         int64
	IssueID    int64
	Stage      Stage
	Title      string
	Summary    string
	Content    string
	AuthorID   uuid.UUID
	AuthorName string
	Department string
	// Rating is the raw aggregate: the sum of all review ratings.
	Rating    int
	CreatedAt time.Time
	UpdatedAt time.Time

	// Reviews is populated only when the caller loaded them.
	Reviews []Review
}

// IsAuthoredBy reports whether userID wrote the solution.
func (s *Solution) IsAuthoredBy(userID uuid.UUID) bool {
	return s.AuthorID == userID
}

// SolutionUpdateParams holds partial updates for a solution. The stage is
// fixed at creation and cannot be updated.
type SolutionUpdateParams struct {
	Title   *string
	Summary *string
	Content *string
}

// Review is a star rating plus optional comment on a solution.
type Review struct {
	ID         int64
	SolutionID int64
	AuthorID   uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// Reaction is a user's live reaction on a target.
type Reaction struct {
	UserID     uuid.UUID
	TargetKind TargetKind
	TargetID   int64
	Type       ReactionType
	CreatedAt  time.Time
}

// ReactionTarget identifies what is being reacted to.
type ReactionTarget struct {
	Kind TargetKind
	ID   int64
}

// ReactionSummary is the aggregated view of reactions on one target.
type ReactionSummary struct {
	// Counts has an entry for every reaction type, zeros included.
	Counts map[ReactionType]int
	// UserReaction is the viewer's live reaction, nil if none.
	UserReaction *ReactionType
}

// Total returns the number of live reactions.
func (s ReactionSummary) Total() int {
	n := 0
	for _, c := range s.Counts {
		n += c
	}
	return n
}

// EmptyReactionSummary returns a summary with every bucket at zero.
func EmptyReactionSummary() ReactionSummary {
	counts := make(map[ReactionType]int, len(ReactionTypes))
	for _, t := range ReactionTypes {
		counts[t] = 0
	}
	return ReactionSummary{Counts: counts}
}
