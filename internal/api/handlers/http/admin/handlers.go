package admin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"cityDesk/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type IssueWriter interface {
	CreateIssue(ctx context.Context, req domain.CreateIssueRequest) (*domain.Issue, error)
	UpdateIssueStatus(ctx context.Context, id uuid.UUID, req domain.UpdateIssueStatusRequest) error
}

type AreaAssigner interface {
	AssignAreas(ctx context.Context, userID uuid.UUID, areas []domain.GeographicArea) error
}

type Handler struct {
	logger *slog.Logger
	Issues IssueWriter
	Areas  AreaAssigner
}

func NewHandler(logger *slog.Logger, issues IssueWriter, areas AreaAssigner) *Handler {
	return &Handler{
		logger: logger,
		Issues: issues,
		Areas:  areas,
	}
}

// IssueCreate is mounted behind middleware.BindJSON, which has already validated req.
func (h *Handler) IssueCreate(w http.ResponseWriter, r *http.Request, req domain.CreateIssueRequest) {
	l := h.log(r)
	l.Info("creating issue",
		slog.Float64("lat", req.Latitude),
		slog.Float64("lng", req.Longitude),
		slog.String("category", string(req.Category)),
		slog.String("priority", string(req.Priority)),
	)

	issue, err := h.Issues.CreateIssue(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("issue created", slog.String("id", issue.ID.String()), slog.String("area", issue.Area))
	h.writeJSON(w, http.StatusCreated, issue)
}

func (h *Handler) IssueStatusUpdate(w http.ResponseWriter, r *http.Request, req domain.UpdateIssueStatusRequest) {
	l := h.log(r)

	id, ok := h.pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.Issues.UpdateIssueStatus(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("issue status updated", slog.String("id", id.String()), slog.String("status", string(req.Status)))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UserAreasAssign(w http.ResponseWriter, r *http.Request, req domain.AssignAreasRequest) {
	l := h.log(r)

	userID, ok := h.pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.Areas.AssignAreas(r.Context(), userID, req.Areas); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("user areas assigned", slog.String("user_id", userID.String()), slog.Int("areas", len(req.Areas)))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pathUUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
