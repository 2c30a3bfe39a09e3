package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
	"github.com/kamrul-CSE-official/ksa-backend/internal/service/issue"
)

//go:generate moq -out issue_service_mock_test.go -pkg rest . issueService

// issueService defines the operations IssueHandler needs.
type issueService interface {
	CreateIssue(ctx context.Context, input issue.CreateIssueInput) (*issue.IssueResult, error)
	GetIssue(ctx context.Context, ref string) (*issue.IssueResult, error)
	GetMe(ctx context.Context) (*domain.User, error)
	StageCounts(ctx context.Context, issueRef string) (domain.StageCounts, error)
	Board(ctx context.Context, input issue.BoardInput) (*issue.BoardResult, error)
	CreateSolution(ctx context.Context, input issue.CreateSolutionInput) (*issue.SolutionResult, error)
	UpdateSolution(ctx context.Context, input issue.UpdateSolutionInput) (*issue.SolutionResult, error)
	DeleteSolution(ctx context.Context, ref string) error
	SubmitReview(ctx context.Context, input issue.SubmitReviewInput) (*domain.Review, error)
	ListReviews(ctx context.Context, solutionRef string) ([]domain.Review, error)
	ReactToIssue(ctx context.Context, issueRef string, t domain.ReactionType) (domain.ReactionSummary, error)
	ReactToSolution(ctx context.Context, solutionRef string, t domain.ReactionType) (domain.ReactionSummary, error)
}

// IssueHandler serves the issue, solution and review endpoints.
type IssueHandler struct {
	svc issueService
	log *slog.Logger
}

// NewIssueHandler creates an IssueHandler.
func NewIssueHandler(svc issueService, logger *slog.Logger) *IssueHandler {
	return &IssueHandler{svc: svc, log: logger.With("handler", "issue")}
}

// Routes mounts the handler's endpoints on r.
func (h *IssueHandler) Routes(r chi.Router) {
	r.Get("/me", h.Me)

	r.Route("/issues", func(r chi.Router) {
		r.Post("/", h.CreateIssue)
		r.Route("/{ref}", func(r chi.Router) {
			r.Get("/", h.GetIssue)
			r.Get("/stages", h.StageCounts)
			r.Get("/board", h.Board)
			r.Post("/solutions", h.CreateSolution)
			r.Post("/reactions", h.ReactToIssue)
		})
	})

	r.Route("/solutions/{ref}", func(r chi.Router) {
		r.Patch("/", h.UpdateSolution)
		r.Delete("/", h.DeleteSolution)
		r.Get("/reviews", h.ListReviews)
		r.Put("/review", h.SubmitReview)
		r.Post("/reactions", h.ReactToSolution)
	})
}

// Me handles GET /api/me.
func (h *IssueHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetMe(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// CreateIssue handles POST /api/issues.
func (h *IssueHandler) CreateIssue(w http.ResponseWriter, r *http.Request) {
	var req createIssueRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.CreateIssue(r.Context(), issue.CreateIssueInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toIssueResponse(result))
}

// GetIssue handles GET /api/issues/{ref}.
func (h *IssueHandler) GetIssue(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetIssue(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toIssueResponse(result))
}

// StageCounts handles GET /api/issues/{ref}/stages.
func (h *IssueHandler) StageCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.StageCounts(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStageCounts(counts))
}

// ownDepartment as the dept parameter selects the caller's own department.
const ownDepartment = "mine"

// Board handles GET /api/issues/{ref}/board?view=0..9&dept=X. The view
// parameter is the legacy navigation index and defaults to 0.
func (h *IssueHandler) Board(w http.ResponseWriter, r *http.Request) {
	navIndex := 0
	if raw := r.URL.Query().Get("view"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "view must be an integer")
			return
		}
		navIndex = n
	}

	view, err := domain.ParseNavIndex(navIndex)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := issue.BoardInput{
		IssueRef:   chi.URLParam(r, "ref"),
		View:       view,
		Department: r.URL.Query().Get("dept"),
	}
	if input.Department == ownDepartment {
		input.Department = ""
		input.OwnDepartment = true
	}

	result, err := h.svc.Board(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toBoardResponse(result))
}

// CreateSolution handles POST /api/issues/{ref}/solutions.
func (h *IssueHandler) CreateSolution(w http.ResponseWriter, r *http.Request) {
	var req createSolutionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.CreateSolution(r.Context(), issue.CreateSolutionInput{
		IssueRef: chi.URLParam(r, "ref"),
		Status:   req.Status,
		Title:    req.Title,
		Summary:  req.Summary,
		Content:  req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSolutionResponse(*result))
}

// UpdateSolution handles PATCH /api/solutions/{ref}.
func (h *IssueHandler) UpdateSolution(w http.ResponseWriter, r *http.Request) {
	var req updateSolutionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.UpdateSolution(r.Context(), issue.UpdateSolutionInput{
		Ref:     chi.URLParam(r, "ref"),
		Title:   req.Title,
		Summary: req.Summary,
		Content: req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSolutionResponse(*result))
}

// DeleteSolution handles DELETE /api/solutions/{ref}.
func (h *IssueHandler) DeleteSolution(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSolution(r.Context(), chi.URLParam(r, "ref")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListReviews handles GET /api/solutions/{ref}/reviews.
func (h *IssueHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.ListReviews(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]reviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		out = append(out, toReviewResponse(rev))
	}
	writeJSON(w, http.StatusOK, out)
}

// SubmitReview handles PUT /api/solutions/{ref}/review.
func (h *IssueHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rev, err := h.svc.SubmitReview(r.Context(), issue.SubmitReviewInput{
		SolutionRef: chi.URLParam(r, "ref"),
		Rating:      req.Rating,
		Comment:     req.Comment,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponse(*rev))
}

// ReactToIssue handles POST /api/issues/{ref}/reactions.
func (h *IssueHandler) ReactToIssue(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, h.svc.ReactToIssue)
}

// ReactToSolution handles POST /api/solutions/{ref}/reactions.
func (h *IssueHandler) ReactToSolution(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, h.svc.ReactToSolution)
}

type reactFunc func(ctx context.Context, ref string, t domain.ReactionType) (domain.ReactionSummary, error)

func (h *IssueHandler) react(w http.ResponseWriter, r *http.Request, fn reactFunc) {
	var req reactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	summary, err := fn(r.Context(), chi.URLParam(r, "ref"), req.reactionType())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReactionsResponse(summary))
}
