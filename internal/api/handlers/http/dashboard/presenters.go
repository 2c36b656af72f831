package dashboard

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"cityDesk/internal/domain"
	"cityDesk/pkg/e"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func newIssueList(issues []domain.Issue) domain.IssueListResponse {
	if issues == nil {
		issues = []domain.Issue{}
	}
	return domain.IssueListResponse{Issues: issues, Total: len(issues)}
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidCoordinates):
		status = http.StatusBadRequest
	case errors.Is(err, e.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, e.ErrDeadline):
		status = http.StatusGatewayTimeout
	default:
		status = http.StatusInternalServerError
	}

	l := h.log(r)
	if status >= http.StatusInternalServerError {
		l.Error("handler error", slog.String("path", r.URL.Path), slog.Any("error", err))
		h.writeJSON(w, status, map[string]string{"error": http.StatusText(status)})
		return
	}
	l.Warn("request rejected", slog.String("path", r.URL.Path), slog.Any("error", err))
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}
