package reaction

import (
	"github.com/google/uuid"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
)

// Action is the persistence step an Outcome asks the caller to perform.
type Action string

const (
	ActionInsert  Action = "insert"
	ActionReplace Action = "replace"
	ActionRemove  Action = "remove"
)

// Outcome is the decision Apply takes for one reaction request.
type Outcome struct {
	Action Action
	// Reaction is the row to write for insert/replace, or the row to delete
	// for remove.
	Reaction domain.Reaction
	// Previous is the user's live reaction before the request, if any.
	Previous *domain.Reaction
	// Summary is the target's summary after the action, seen by the user.
	Summary domain.ReactionSummary
}

// Apply decides what a reaction request from userID on target does, given the
// target's current rows. Requesting the type the user already has toggles it
// off; requesting a different type replaces it. Apply does not mutate rows.
func Apply(rows []domain.Reaction, userID uuid.UUID, target domain.ReactionTarget, requested domain.ReactionType) Outcome {
	if !requested.IsValid() {
		requested = domain.ReactionUnspecified
	}

	next := make([]domain.Reaction, 0, len(rows)+1)
	var previous *domain.Reaction
	for _, r := range rows {
		if r.UserID == userID && previous == nil {
			prev := r
			previous = &prev
			continue
		}
		if r.UserID == userID {
			// Duplicate row for the same user; never counted twice.
			continue
		}
		next = append(next, r)
	}

	row := domain.Reaction{
		UserID:     userID,
		TargetKind: target.Kind,
		TargetID:   target.ID,
		Type:       requested,
	}

	out := Outcome{Previous: previous, Reaction: row}
	switch {
	case previous == nil:
		out.Action = ActionInsert
		next = append(next, row)
	case previous.Type == requested:
		out.Action = ActionRemove
		out.Reaction = *previous
	default:
		out.Action = ActionReplace
		next = append(next, row)
	}

	out.Summary = Summarize(next, userID)
	return out
}

// Summarize counts rows per reaction type. Every bucket is present. A user
// contributes at most one reaction: the first row seen for them.
func Summarize(rows []domain.Reaction, viewerID uuid.UUID) domain.ReactionSummary {
	summary := domain.EmptyReactionSummary()
	seen := make(map[uuid.UUID]struct{}, len(rows))

	for _, r := range rows {
		if _, dup := seen[r.UserID]; dup {
			continue
		}
		seen[r.UserID] = struct{}{}

		t := r.Type
		if !t.IsValid() {
			t = domain.ReactionUnspecified
		}
		summary.Counts[t]++

		if viewerID != uuid.Nil && r.UserID == viewerID {
			mine := t
			summary.UserReaction = &mine
		}
	}

	return summary
}
