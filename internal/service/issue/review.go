package issue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/fetch"
)

// SubmitReview rates a solution for the current user. A second review from
// the same user replaces the first.
func (s *Service) SubmitReview(ctx context.Context, input SubmitReviewInput) (*domain.Review, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	solutionID, err := s.resolve("solution", input.SolutionRef)
	if err != nil {
		return nil, err
	}

	if _, err := s.loadSolution(ctx, solutionID); err != nil {
		return nil, fmt.Errorf("get solution: %w", err)
	}

	rev, err := s.reviews.Upsert(ctx, domain.Review{
		ID:         s.ids.NewID(),
		SolutionID: solutionID,
		AuthorID:   userID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
	})
	if err != nil {
		return nil, fmt.Errorf("upsert review: %w", err)
	}

	s.log.InfoContext(ctx, "review submitted",
		slog.String("user_id", userID.String()),
		slog.Int64("solution_id", solutionID),
		slog.Int("rating", rev.Rating),
	)

	return rev, nil
}

// ListReviews returns the reviews of a solution, oldest first.
func (s *Service) ListReviews(ctx context.Context, solutionRef string) ([]domain.Review, error) {
	solutionID, err := s.resolve("solution", solutionRef)
	if err != nil {
		return nil, err
	}

	if _, err := s.loadSolution(ctx, solutionID); err != nil {
		return nil, fmt.Errorf("get solution: %w", err)
	}

	reviews, err := fetch.Value(ctx, s.fetch, "reviews", func(ctx context.Context) ([]domain.Review, error) {
		return s.reviews.ListBySolution(ctx, solutionID)
	})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}
