// Package ranking orders the solutions of an issue and picks its top one.
//
// Rank and TopSolution deliberately use different rules: Rank orders by the
// average review rating, TopSolution compares the raw Rating field. They
// back different parts of the UI and must not be merged.
package ranking

import (
	"cmp"
	"slices"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
)

// AverageRating returns the mean review rating, or 0 without reviews.
func AverageRating(reviews []domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// Rank returns the solutions ordered by average review rating, then by
// review count, both descending. Ties keep their input order. The input
// slice is not modified.
func Rank(solutions []domain.Solution) []domain.Solution {
	keyed := make([]keyedSolution, len(solutions))
	for i, s := range solutions {
		keyed[i] = keyedSolution{
			solution: s,
			average:  AverageRating(s.Reviews),
			reviews:  len(s.Reviews),
		}
	}

	slices.SortStableFunc(keyed, func(a, b keyedSolution) int {
		if c := cmp.Compare(b.average, a.average); c != 0 {
			return c
		}
		return cmp.Compare(b.reviews, a.reviews)
	})

	ranked := make([]domain.Solution, len(keyed))
	for i, k := range keyed {
		ranked[i] = k.solution
	}
	return ranked
}

type keyedSolution struct {
	solution domain.Solution
	average  float64
	reviews  int
}

// TopSolution returns the solution with the strictly highest raw Rating.
// The first solution wins ties. Empty input returns nil.
func TopSolution(solutions []domain.Solution) *domain.Solution {
	if len(solutions) == 0 {
		return nil
	}

	top := 0
	for i := 1; i < len(solutions); i++ {
		if solutions[i].Rating > solutions[top].Rating {
			top = i
		}
	}

	s := solutions[top]
	return &s
}
