package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"cityDesk/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type IssueReader interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Issue, error)
	StatsForUser(ctx context.Context, userID uuid.UUID) (domain.GeographicStats, error)
	Nearby(ctx context.Context, req domain.NearbyRequest) ([]domain.Issue, error)
	SLA(ctx context.Context, id uuid.UUID) (domain.SLAEvaluation, error)
}

type AreaReader interface {
	ListAreas(ctx context.Context) ([]domain.Area, error)
	ValidateArea(area domain.GeographicArea) domain.ValidationResult
	ClosestArea(ctx context.Context, point domain.LocationPoint) (*domain.Area, error)
}

type Handler struct {
	logger *slog.Logger
	Issues IssueReader
	Areas  AreaReader
}

func NewHandler(logger *slog.Logger, issues IssueReader, areas AreaReader) *Handler {
	return &Handler{
		logger: logger,
		Issues: issues,
		Areas:  areas,
	}
}

func (h *Handler) UserIssues(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	userID, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	issues, err := h.Issues.ListForUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("user issues listed", slog.String("user_id", userID.String()), slog.Int("count", len(issues)))
	h.writeJSON(w, http.StatusOK, newIssueList(issues))
}

func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	stats, err := h.Issues.StatsForUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) NearbyIssues(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	q := r.URL.Query()

	lat, err1 := parseFloat(q.Get("lat"))
	lng, err2 := parseFloat(q.Get("lng"))
	radius, err3 := parseFloat(q.Get("radius_km"))
	if err1 != nil || err2 != nil || err3 != nil {
		l.Warn("invalid nearby query", slog.String("query", r.URL.RawQuery))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat, lng and radius_km must be numbers"})
		return
	}

	issues, err := h.Issues.Nearby(r.Context(), domain.NearbyRequest{
		Latitude:  lat,
		Longitude: lng,
		RadiusKM:  radius,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, newIssueList(issues))
}

func (h *Handler) IssueSLA(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	ev, err := h.Issues.SLA(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ev)
}

func (h *Handler) AreasList(w http.ResponseWriter, r *http.Request) {
	areas, err := h.Areas.ListAreas(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if areas == nil {
		areas = []domain.Area{}
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"areas": areas, "total": len(areas)})
}

// AreaValidate always answers 200; the verdict is in the body. Mount it
// with middleware.DecodeJSON.
func (h *Handler) AreaValidate(w http.ResponseWriter, r *http.Request, area domain.GeographicArea) {
	res := h.Areas.ValidateArea(area)
	if res.Errors == nil {
		res.Errors = []string{}
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) AreaClosest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err1 := parseFloat(q.Get("lat"))
	lng, err2 := parseFloat(q.Get("lng"))
	if err1 != nil || err2 != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng must be numbers"})
		return
	}

	area, err := h.Areas.ClosestArea(r.Context(), domain.LocationPoint{Latitude: lat, Longitude: lng})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, area)
}

func (h *Handler) pathUUID(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, key)
	id, err := uuid.Parse(raw)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String(key, raw), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid " + key})
		return uuid.Nil, false
	}
	return id, true
}
