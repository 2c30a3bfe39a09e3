package reaction

import (
	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
)

// ReactInput holds the parameters for reacting to a target.
type ReactInput struct {
	Target domain.ReactionTarget
	// Type is the requested reaction. Unknown types land in the
	// unspecified bucket.
	Type domain.ReactionType
}

// Validate checks all fields and collects all errors.
func (i ReactInput) Validate() error {
	var errs []domain.FieldError

	if !i.Target.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_kind", Message: "must be issue or solution"})
	}
	if i.Target.ID == 0 {
		errs = append(errs, domain.FieldError{Field: "target_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
