// Package stage classifies solutions into the five argumentation stages and
// answers per-stage questions about an issue.
package stage

import (
	"context"
	"log/slog"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/fetch"
)

//go:generate moq -out solution_repo_mock_test.go -pkg stage . solutionRepo

type solutionRepo interface {
	CountByStage(ctx context.Context, issueID int64) (map[domain.Stage]int, error)
	List(ctx context.Context, filter domain.SolutionFilter) ([]domain.Solution, error)
}

// Service serves stage counts and per-stage solution lists.
type Service struct {
	solutions solutionRepo
	fetch     *fetch.Retrier
	log       *slog.Logger
}

// NewService creates a new Stage service.
func NewService(
	log *slog.Logger,
	solutions solutionRepo,
	retrier *fetch.Retrier,
) *Service {
	return &Service{
		solutions: solutions,
		fetch:     retrier,
		log:       log.With("service", "stage"),
	}
}

// Classify maps a persisted status code to its stage. Codes outside 5..9
// return domain.ErrUnknownStage.
func Classify(code int) (domain.Stage, error) {
	return domain.StageFromStatus(code)
}
