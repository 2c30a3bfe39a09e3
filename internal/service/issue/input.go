package issue

import (
	"strings"
	"unicode/utf8"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
)

const (
	maxTitleLength   = 200
	maxSummaryLength = 1000
	maxTags          = 10
	maxTagLength     = 50
	maxCommentLength = 2000
)

// CreateIssueInput holds the parameters for raising an issue.
type CreateIssueInput struct {
	Title   string
	Content string
	Tags    []string
}

// Validate checks all fields and collects all errors.
func (i CreateIssueInput) Validate() error {
	var errs []domain.FieldError

	errs = appendTitleErrors(errs, i.Title)

	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 10 tags"})
	}
	for _, tag := range i.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "empty tag"})
			break
		}
		if utf8.RuneCountInString(tag) > maxTagLength {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "max 50 characters per tag"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// normalizedTags trims tags and drops duplicates, keeping first occurrence.
func (i CreateIssueInput) normalizedTags() []string {
	out := make([]string, 0, len(i.Tags))
	seen := make(map[string]struct{}, len(i.Tags))
	for _, tag := range i.Tags {
		tag = strings.TrimSpace(tag)
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// CreateSolutionInput holds the parameters for contributing a solution.
type CreateSolutionInput struct {
	IssueRef string
	// Status is the stage status code, 5..9.
	Status  int
	Title   string
	Summary string
	Content string
}

// Validate checks all fields and collects all errors. The status code is
// checked separately so an unknown stage surfaces as domain.ErrUnknownStage.
func (i CreateSolutionInput) Validate() error {
	var errs []domain.FieldError

	if i.IssueRef == "" {
		errs = append(errs, domain.FieldError{Field: "issue", Message: "required"})
	}
	errs = appendTitleErrors(errs, i.Title)
	if utf8.RuneCountInString(i.Summary) > maxSummaryLength {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "max 1000 characters"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSolutionInput holds a partial edit of a solution. The stage cannot
// be changed.
type UpdateSolutionInput struct {
	Ref     string
	Title   *string
	Summary *string
	Content *string
}

// Validate checks all fields and collects all errors.
func (i UpdateSolutionInput) Validate() error {
	var errs []domain.FieldError

	if i.Ref == "" {
		errs = append(errs, domain.FieldError{Field: "solution", Message: "required"})
	}
	if i.Title == nil && i.Summary == nil && i.Content == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = appendTitleErrors(errs, *i.Title)
	}
	if i.Summary != nil && utf8.RuneCountInString(*i.Summary) > maxSummaryLength {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "max 1000 characters"})
	}
	if i.Content != nil && strings.TrimSpace(*i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateSolutionInput) params() domain.SolutionUpdateParams {
	p := domain.SolutionUpdateParams{Summary: i.Summary, Content: i.Content}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		p.Title = &title
	}
	return p
}

// SubmitReviewInput holds a review of a solution.
type SubmitReviewInput struct {
	SolutionRef string
	Rating      int
	Comment     string
}

// Validate checks all fields and collects all errors.
func (i SubmitReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.SolutionRef == "" {
		errs = append(errs, domain.FieldError{Field: "solution", Message: "required"})
	}
	if i.Rating < domain.MinReviewRating || i.Rating > domain.MaxReviewRating {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	if utf8.RuneCountInString(i.Comment) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BoardInput selects one stage view of an issue.
type BoardInput struct {
	IssueRef string
	View     domain.StageView
	// Department narrows a browse view to authors of one department. Empty
	// means every department.
	Department string
	// OwnDepartment narrows the view to the caller's department instead.
	OwnDepartment bool
}

// Validate checks all fields and collects all errors.
func (i BoardInput) Validate() error {
	var errs []domain.FieldError

	if i.IssueRef == "" {
		errs = append(errs, domain.FieldError{Field: "issue", Message: "required"})
	}
	if !i.View.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "view", Message: "must be browse or compose"})
	}
	if i.OwnDepartment && i.Department != "" {
		errs = append(errs, domain.FieldError{Field: "dept", Message: "cannot combine a department with the caller's own"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendTitleErrors(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	return errs
}
