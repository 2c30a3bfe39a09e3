// Package issue orchestrates issues, their solutions and reviews. It resolves
// opaque references, enforces authorship and assembles the stage board.
package issue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/fetch"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/reaction"
	"github.com/kamrul-CSE-official/ksa-backend/pkg/ctxutil"
)

//go:generate moq -out issue_repo_mock_test.go -pkg issue . issueRepo
//go:generate moq -out solution_repo_mock_test.go -pkg issue . solutionRepo
//go:generate moq -out review_repo_mock_test.go -pkg issue . reviewRepo
//go:generate moq -out user_repo_mock_test.go -pkg issue . userRepo
//go:generate moq -out reaction_service_mock_test.go -pkg issue . reactionService
//go:generate moq -out stage_service_mock_test.go -pkg issue . stageService
//go:generate moq -out ref_codec_mock_test.go -pkg issue . refCodec
//go:generate moq -out id_generator_mock_test.go -pkg issue . idGenerator
//go:generate moq -out tx_manager_mock_test.go -pkg issue . txManager

type issueRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Issue, error)
	Create(ctx context.Context, issue domain.Issue) (*domain.Issue, error)
}

type solutionRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Solution, error)
	List(ctx context.Context, filter domain.SolutionFilter) ([]domain.Solution, error)
	Create(ctx context.Context, s domain.Solution) (*domain.Solution, error)
	Update(ctx context.Context, id int64, params domain.SolutionUpdateParams) (*domain.Solution, error)
	Delete(ctx context.Context, id int64) error
}

type reviewRepo interface {
	Upsert(ctx context.Context, rev domain.Review) (*domain.Review, error)
	ListBySolution(ctx context.Context, solutionID int64) ([]domain.Review, error)
	ListBySolutions(ctx context.Context, solutionIDs []int64) ([]domain.Review, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type reactionService interface {
	React(ctx context.Context, input reaction.ReactInput) (domain.ReactionSummary, error)
	Summary(ctx context.Context, target domain.ReactionTarget) (domain.ReactionSummary, error)
	Summaries(ctx context.Context, kind domain.TargetKind, ids []int64) (map[int64]domain.ReactionSummary, error)
}

type stageService interface {
	CountsByStage(ctx context.Context, issueID int64) (domain.StageCounts, error)
	FilterByDepartment(ctx context.Context, issueID int64, st domain.Stage, department string) ([]domain.Solution, error)
}

type refCodec interface {
	EncodeID(id int64) (string, error)
	DecodeID(token string) (int64, error)
}

type idGenerator interface {
	NewID() int64
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides issue, solution and review operations.
type Service struct {
	issues    issueRepo
	solutions solutionRepo
	reviews   reviewRepo
	users     userRepo
	reactions reactionService
	stages    stageService
	codec     refCodec
	ids       idGenerator
	tx        txManager
	fetch     *fetch.Retrier
	log       *slog.Logger
}

// NewService creates a new Issue service.
func NewService(
	log *slog.Logger,
	issues issueRepo,
	solutions solutionRepo,
	reviews reviewRepo,
	users userRepo,
	reactions reactionService,
	stages stageService,
	codec refCodec,
	ids idGenerator,
	tx txManager,
	retrier *fetch.Retrier,
) *Service {
	return &Service{
		issues:    issues,
		solutions: solutions,
		reviews:   reviews,
		users:     users,
		reactions: reactions,
		stages:    stages,
		codec:     codec,
		ids:       ids,
		tx:        tx,
		fetch:     retrier,
		log:       log.With("service", "issue"),
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// currentUser returns the authenticated user or domain.ErrUnauthorized.
func currentUser(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// resolve decodes a reference token. Codec errors already wrap
// domain.ErrInvalidReference.
func (s *Service) resolve(field, ref string) (int64, error) {
	if ref == "" {
		return 0, domain.NewValidationError(field, "required")
	}
	id, err := s.codec.DecodeID(ref)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return id, nil
}

func (s *Service) ref(id int64) (string, error) {
	token, err := s.codec.EncodeID(id)
	if err != nil {
		return "", fmt.Errorf("encode reference: %w", err)
	}
	return token, nil
}

func (s *Service) loadIssue(ctx context.Context, id int64) (*domain.Issue, error) {
	return fetch.Value(ctx, s.fetch, "issue", func(ctx context.Context) (*domain.Issue, error) {
		return s.issues.GetByID(ctx, id)
	})
}

func (s *Service) loadSolution(ctx context.Context, id int64) (*domain.Solution, error) {
	return fetch.Value(ctx, s.fetch, "solution", func(ctx context.Context) (*domain.Solution, error) {
		return s.solutions.GetByID(ctx, id)
	})
}

// solutionResult renders a solution together with its references.
func (s *Service) solutionResult(sol domain.Solution, summary domain.ReactionSummary) (SolutionResult, error) {
	ref, err := s.ref(sol.ID)
	if err != nil {
		return SolutionResult{}, err
	}
	issueRef, err := s.ref(sol.IssueID)
	if err != nil {
		return SolutionResult{}, err
	}
	return SolutionResult{
		Solution:  sol,
		Ref:       ref,
		IssueRef:  issueRef,
		Reactions: summary,
	}, nil
}
