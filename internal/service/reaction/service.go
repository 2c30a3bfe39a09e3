// Package reaction applies and summarizes reactions on issues and solutions.
// Apply and Summarize are pure; Service wires them to the repository.
package reaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
)

//go:generate moq -out reaction_repo_mock_test.go -pkg reaction . reactionRepo
//go:generate moq -out tx_manager_mock_test.go -pkg reaction . txManager

type reactionRepo interface {
	ListByTarget(ctx context.Context, target domain.ReactionTarget) ([]domain.Reaction, error)
	ListByTargets(ctx context.Context, kind domain.TargetKind, ids []int64) ([]domain.Reaction, error)
	Upsert(ctx context.Context, r domain.Reaction) error
	Delete(ctx context.Context, userID uuid.UUID, target domain.ReactionTarget) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service persists reaction decisions and serves summaries.
type Service struct {
	reactions reactionRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Reaction service.
func NewService(
	log *slog.Logger,
	reactions reactionRepo,
	tx txManager,
) *Service {
	return &Service{
		reactions: reactions,
		tx:        tx,
		log:       log.With("service", "reaction"),
	}
}
