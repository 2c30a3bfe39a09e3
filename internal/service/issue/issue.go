package issue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/fetch"
)

// CreateIssue raises a new issue authored by the current user.
func (s *Service) CreateIssue(ctx context.Context, input CreateIssueInput) (*IssueResult, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.issues.Create(ctx, domain.Issue{
		ID:       s.ids.NewID(),
		Title:    strings.TrimSpace(input.Title),
		Content:  input.Content,
		AuthorID: userID,
		Tags:     input.normalizedTags(),
	})
	if err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}

	ref, err := s.ref(created.ID)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "issue created",
		slog.String("user_id", userID.String()),
		slog.Int64("issue_id", created.ID),
	)

	return &IssueResult{Issue: *created, Ref: ref, Reactions: domain.EmptyReactionSummary()}, nil
}

// GetIssue resolves ref and returns the issue with the viewer's reaction
// summary. Anonymous viewers are allowed.
func (s *Service) GetIssue(ctx context.Context, ref string) (*IssueResult, error) {
	id, err := s.resolve("issue", ref)
	if err != nil {
		return nil, err
	}

	return s.issueResult(ctx, id, ref)
}

func (s *Service) issueResult(ctx context.Context, id int64, ref string) (*IssueResult, error) {
	issue, err := s.loadIssue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get issue: %w", err)
	}

	target := domain.ReactionTarget{Kind: domain.TargetIssue, ID: id}
	summary, err := fetch.Value(ctx, s.fetch, "issue reactions", func(ctx context.Context) (domain.ReactionSummary, error) {
		return s.reactions.Summary(ctx, target)
	})
	if err != nil {
		return nil, fmt.Errorf("issue reactions: %w", err)
	}

	return &IssueResult{Issue: *issue, Ref: ref, Reactions: summary}, nil
}

// GetMe returns the directory record of the current user.
func (s *Service) GetMe(ctx context.Context) (*domain.User, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	u, err := fetch.Value(ctx, s.fetch, "user", func(ctx context.Context) (*domain.User, error) {
		return s.users.GetByID(ctx, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
