package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/issue"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createIssueRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type createSolutionRequest struct {
	Status  int    `json:"status"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

type updateSolutionRequest struct {
	Title   *string `json:"title"`
	Summary *string `json:"summary"`
	Content *string `json:"content"`
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// reactionRequest carries either a wire code or a label. A request with
// neither lands in the unspecified bucket.
type reactionRequest struct {
	Type  *int   `json:"type"`
	Label string `json:"label"`
}

func (r reactionRequest) reactionType() domain.ReactionType {
	if r.Type != nil {
		return domain.ReactionTypeFromCode(*r.Type)
	}
	return domain.ReactionTypeFromLabel(r.Label)
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type userResponse struct {
	UserID     uuid.UUID `json:"USER_ID"`
	FullName   string    `json:"FULL_NAME"`
	Department string    `json:"DEPTNAME"`
}

type reactionRef struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
}

type reactionCount struct {
	reactionRef
	Count int `json:"count"`
}

type reactionsResponse struct {
	Counts []reactionCount `json:"counts"`
	Total  int             `json:"total"`
	Mine   *reactionRef    `json:"mine"`
}

type issueResponse struct {
	ID        string            `json:"ID"`
	Title     string            `json:"TITLE"`
	Content   string            `json:"CONTENT"`
	UserID    uuid.UUID         `json:"USER_ID"`
	FullName  string            `json:"FULL_NAME"`
	Tags      []string          `json:"TAGS"`
	LikeCount int               `json:"LIKE_COUNT"`
	CreatedAt time.Time         `json:"CREATED_AT"`
	UpdatedAt time.Time         `json:"UPDATED_AT"`
	Reactions reactionsResponse `json:"reactions"`
}

type solutionResponse struct {
	ID         string            `json:"ID"`
	IssueID    string            `json:"ISSUE_ID"`
	Title      string            `json:"TITLE"`
	Summary    string            `json:"Summary"`
	Content    string            `json:"CONTENT"`
	Status     int               `json:"STATUS"`
	Stage      string            `json:"STAGE"`
	UserID     uuid.UUID         `json:"USER_ID"`
	FullName   string            `json:"FULL_NAME"`
	Department string            `json:"DEPTNAME"`
	Rating     int               `json:"Rating"`
	CreatedAt  time.Time         `json:"CREATED_AT"`
	UpdatedAt  time.Time         `json:"UPDATED_AT"`
	Top        bool              `json:"TOP"`
	Reactions  reactionsResponse `json:"reactions"`
}

type reviewResponse struct {
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	AuthorID  uuid.UUID `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type stageCountResponse struct {
	Stage    string `json:"stage"`
	Status   int    `json:"status"`
	NavIndex int    `json:"navIndex"`
	Count    int    `json:"count"`
}

type viewResponse struct {
	Mode     string `json:"mode"`
	Stage    string `json:"stage"`
	NavIndex int    `json:"navIndex"`
}

type boardResponse struct {
	Issue     issueResponse        `json:"issue"`
	View      viewResponse         `json:"view"`
	Counts    []stageCountResponse `json:"counts"`
	Solutions []solutionResponse   `json:"solutions"`
	TopID     string               `json:"topId,omitempty"`
}

// ---------------------------------------------------------------------------
// Mappers
// ---------------------------------------------------------------------------

func toUserResponse(u *domain.User) userResponse {
	return userResponse{UserID: u.ID, FullName: u.FullName, Department: u.Department}
}

func toReactionsResponse(s domain.ReactionSummary) reactionsResponse {
	out := reactionsResponse{Counts: make([]reactionCount, 0, len(domain.ReactionTypes))}
	for _, t := range domain.ReactionTypes {
		out.Counts = append(out.Counts, reactionCount{
			reactionRef: reactionRef{Code: t.Code(), Label: t.Label()},
			Count:       s.Counts[t],
		})
	}
	out.Total = s.Total()
	if s.UserReaction != nil {
		out.Mine = &reactionRef{Code: s.UserReaction.Code(), Label: s.UserReaction.Label()}
	}
	return out
}

func toIssueResponse(r *issue.IssueResult) issueResponse {
	tags := r.Issue.Tags
	if tags == nil {
		tags = []string{}
	}
	return issueResponse{
		ID:        r.Ref,
		Title:     r.Issue.Title,
		Content:   r.Issue.Content,
		UserID:    r.Issue.AuthorID,
		FullName:  r.Issue.AuthorName,
		Tags:      tags,
		LikeCount: r.Issue.LikeCount,
		CreatedAt: r.Issue.CreatedAt,
		UpdatedAt: r.Issue.UpdatedAt,
		Reactions: toReactionsResponse(r.Reactions),
	}
}

func toSolutionResponse(r issue.SolutionResult) solutionResponse {
	s := r.Solution
	return solutionResponse{
		ID:         r.Ref,
		IssueID:    r.IssueRef,
		Title:      s.Title,
		Summary:    s.Summary,
		Content:    s.Content,
		Status:     s.Stage.Status(),
		Stage:      s.Stage.Label(),
		UserID:     s.AuthorID,
		FullName:   s.AuthorName,
		Department: s.Department,
		Rating:     s.Rating,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		Top:        r.Top,
		Reactions:  toReactionsResponse(r.Reactions),
	}
}

func toReviewResponse(rev domain.Review) reviewResponse {
	return reviewResponse{
		Rating:    rev.Rating,
		Comment:   rev.Comment,
		AuthorID:  rev.AuthorID,
		CreatedAt: rev.CreatedAt,
		UpdatedAt: rev.UpdatedAt,
	}
}

func toStageCounts(counts domain.StageCounts) []stageCountResponse {
	out := make([]stageCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, stageCountResponse{
			Stage:    c.Stage.Label(),
			Status:   c.Stage.Status(),
			NavIndex: domain.Browse(c.Stage).NavIndex(),
			Count:    c.Count,
		})
	}
	return out
}

func toBoardResponse(b *issue.BoardResult) boardResponse {
	out := boardResponse{
		Issue: toIssueResponse(&b.Issue),
		View: viewResponse{
			Mode:     b.View.Mode.String(),
			Stage:    b.View.Stage.Label(),
			NavIndex: b.View.NavIndex(),
		},
		Counts:    toStageCounts(b.Counts),
		Solutions: make([]solutionResponse, 0, len(b.Solutions)),
		TopID:     b.TopRef,
	}
	for _, s := range b.Solutions {
		out.Solutions = append(out.Solutions, toSolutionResponse(s))
	}
	return out
}
