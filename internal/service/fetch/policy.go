// Package fetch runs repository reads under a configurable retry policy.
// The zero Policy never retries.
package fetch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
)

// Policy describes how transient read failures are retried.
type Policy struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

const (
	defaultInitialInterval = 100 * time.Millisecond
	defaultMaxInterval     = 2 * time.Second
)

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	initial := p.InitialInterval
	if initial <= 0 {
		initial = defaultInitialInterval
	}
	maxInterval := p.MaxInterval
	if maxInterval < initial {
		maxInterval = max(initial, defaultMaxInterval)
	}

	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(initial),
		backoff.WithMaxInterval(maxInterval),
		backoff.WithMaxElapsedTime(0),
	)

	retries := max(p.MaxRetries, 0)
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(retries)), ctx)
}

// Retrier applies a Policy and logs each retry. A nil Retrier runs the
// operation once.
type Retrier struct {
	policy Policy
	log    *slog.Logger
}

// New creates a Retrier for the given policy.
func New(log *slog.Logger, policy Policy) *Retrier {
	return &Retrier{
		policy: policy,
		log:    log.With("component", "fetch"),
	}
}

// Policy returns the policy the retrier applies.
func (r *Retrier) Policy() Policy {
	if r == nil {
		return Policy{}
	}
	return r.policy
}

// Do runs op until it succeeds, returns a permanent error, or the policy is
// exhausted. The last error is returned unchanged.
func (r *Retrier) Do(ctx context.Context, name string, op func(ctx context.Context) error) error {
	_, err := Value(ctx, r, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}

// Value is Do for operations that return a result.
func Value[T any](ctx context.Context, r *Retrier, name string, op func(ctx context.Context) (T, error)) (T, error) {
	if r == nil {
		return op(ctx)
	}

	attempt := func() (T, error) {
		v, err := op(ctx)
		if err != nil && IsPermanent(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	notify := func(err error, wait time.Duration) {
		r.log.WarnContext(ctx, "fetch failed, retrying",
			slog.String("op", name),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()),
		)
	}

	return backoff.RetryNotifyWithData(attempt, r.policy.backOff(ctx), notify)
}

// IsPermanent reports whether err must not be retried: domain outcomes and
// context cancellation.
func IsPermanent(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return domain.IsPermanent(err)
}
