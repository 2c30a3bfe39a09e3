package issue

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/fetch"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// boardLoaders batch the per-solution lookups of one board into single
// queries. They are created per call; results are cached only for that call.
type boardLoaders struct {
	reviews   *dataloader.Loader[int64, []domain.Review]
	reactions *dataloader.Loader[int64, domain.ReactionSummary]
}

func (s *Service) newBoardLoaders() *boardLoaders {
	return &boardLoaders{
		reviews:   newLoader(s.reviewsBatchFn()),
		reactions: newLoader(s.reactionsBatchFn()),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Reviews by SolutionID
// ---------------------------------------------------------------------------

func (s *Service) reviewsBatchFn() dataloader.BatchFunc[int64, []domain.Review] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[[]domain.Review] {
		reviews, err := fetch.Value(ctx, s.fetch, "reviews", func(ctx context.Context) ([]domain.Review, error) {
			return s.reviews.ListBySolutions(ctx, keys)
		})
		if err != nil {
			return errorResults[[]domain.Review](len(keys), err)
		}

		grouped := make(map[int64][]domain.Review, len(keys))
		for _, r := range reviews {
			grouped[r.SolutionID] = append(grouped[r.SolutionID], r)
		}

		return mapResults(keys, grouped, emptySlice[domain.Review])
	}
}

// ---------------------------------------------------------------------------
// Reaction summaries by SolutionID
// ---------------------------------------------------------------------------

func (s *Service) reactionsBatchFn() dataloader.BatchFunc[int64, domain.ReactionSummary] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[domain.ReactionSummary] {
		summaries, err := fetch.Value(ctx, s.fetch, "solution reactions", func(ctx context.Context) (map[int64]domain.ReactionSummary, error) {
			return s.reactions.Summaries(ctx, domain.TargetSolution, keys)
		})
		if err != nil {
			return errorResults[domain.ReactionSummary](len(keys), err)
		}

		return mapResults(keys, summaries, domain.EmptyReactionSummary)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []int64, grouped map[int64]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}

// firstError returns the first non-nil error of a LoadMany call.
func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
