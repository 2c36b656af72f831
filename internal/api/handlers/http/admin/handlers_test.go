package admin_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"cityDesk/internal/api/handlers/http/admin"
	mock_admin "cityDesk/internal/api/handlers/http/admin/mocks"
	"cityDesk/internal/domain"
	"cityDesk/internal/middleware"
	"cityDesk/internal/service"
	"cityDesk/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func newHandler(t *testing.T) (*admin.Handler, *mock_admin.MockIssueWriter, *mock_admin.MockAreaAssigner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	issues := mock_admin.NewMockIssueWriter(ctrl)
	areas := mock_admin.NewMockAreaAssigner(ctrl)
	return admin.NewHandler(newTestLogger(), issues, areas), issues, areas
}

func TestIssueCreate_OK(t *testing.T) {
	t.Parallel()

	h, issues, _ := newHandler(t)

	wantReq := domain.CreateIssueRequest{
		Title:     "Water main break",
		Latitude:  40.7128,
		Longitude: -74.006,
		Category:  domain.CategoryWaterLeak,
		Priority:  domain.PriorityCritical,
	}
	created := &domain.Issue{ID: uuid.New(), Title: wantReq.Title, Status: domain.StatusAssigned, Area: "Lower Manhattan"}

	issues.EXPECT().CreateIssue(gomock.Any(), wantReq).Return(created, nil).Times(1)

	body := `{"title":"Water main break","latitude":40.7128,"longitude":-74.006,"category":"water_leak","priority":"critical"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/issues", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	middleware.BindJSON(h.IssueCreate).ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}
	got := decodeJSON[domain.Issue](t, rr)
	if got.ID != created.ID || got.Area != "Lower Manhattan" {
		t.Fatalf("unexpected issue: %+v", got)
	}
}

func TestIssueCreate_ValidationRejectedBeforeService(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{bad json`},
		{"unknown category", `{"title":"x","latitude":1,"longitude":1,"category":"graffiti","priority":"low"}`},
		{"latitude out of range", `{"title":"x","latitude":91,"longitude":1,"category":"other","priority":"low"}`},
		{"missing title", `{"latitude":1,"longitude":1,"category":"other","priority":"low"}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h, issues, _ := newHandler(t)
			issues.EXPECT().CreateIssue(gomock.Any(), gomock.Any()).Times(0)

			rr := httptest.NewRecorder()
			middleware.BindJSON(h.IssueCreate).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body)))

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestIssueCreate_ServiceError_500(t *testing.T) {
	t.Parallel()

	h, issues, _ := newHandler(t)
	issues.EXPECT().CreateIssue(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).Times(1)

	rr := httptest.NewRecorder()
	h.IssueCreate(rr, httptest.NewRequest(http.MethodPost, "/", nil), domain.CreateIssueRequest{Title: "x"})

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d, body=%s", http.StatusInternalServerError, rr.Code, rr.Body.String())
	}
	if got := decodeJSON[map[string]string](t, rr); got["error"] != "internal error" {
		t.Fatalf("unexpected error body: %v", got)
	}
}

func TestIssueStatusUpdate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		id      string
		svcErr  error
		callSvc bool
		want    int
	}{
		{"ok", uuid.NewString(), nil, true, http.StatusNoContent},
		{"invalid id", "123", nil, false, http.StatusBadRequest},
		{"not found", uuid.NewString(), e.ErrNotFound, true, http.StatusNotFound},
		{"invalid status", uuid.NewString(), e.ErrInvalidInput, true, http.StatusBadRequest},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h, issues, _ := newHandler(t)
			req := domain.UpdateIssueStatusRequest{Status: domain.StatusResolved}
			if tc.callSvc {
				issues.EXPECT().
					UpdateIssueStatus(gomock.Any(), uuid.MustParse(tc.id), req).
					Return(tc.svcErr).
					Times(1)
			} else {
				issues.EXPECT().UpdateIssueStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			r := addChiURLParam(httptest.NewRequest(http.MethodPatch, "/", nil), "id", tc.id)
			rr := httptest.NewRecorder()

			h.IssueStatusUpdate(rr, r, req)

			if rr.Code != tc.want {
				t.Fatalf("expected %d got %d, body=%s", tc.want, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestIssueStatusUpdate_UnknownStatusRejectedByBinding(t *testing.T) {
	t.Parallel()

	h, issues, _ := newHandler(t)
	issues.EXPECT().UpdateIssueStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	r := addChiURLParam(
		httptest.NewRequest(http.MethodPatch, "/", bytes.NewBufferString(`{"status":"archived"}`)),
		"id", uuid.NewString(),
	)
	rr := httptest.NewRecorder()

	middleware.BindJSON(h.IssueStatusUpdate).ServeHTTP(rr, r)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestUserAreasAssign_OK(t *testing.T) {
	t.Parallel()

	h, _, areas := newHandler(t)
	userID := uuid.New()
	want := []domain.GeographicArea{
		{Name: "Downtown", Center: domain.LocationPoint{Latitude: 40.7, Longitude: -74}, Radius: 3},
	}
	areas.EXPECT().AssignAreas(gomock.Any(), userID, want).Return(nil).Times(1)

	body := `{"areas":[{"name":"Downtown","center":{"latitude":40.7,"longitude":-74},"radius":3}]}`
	r := addChiURLParam(httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(body)), "id", userID.String())
	rr := httptest.NewRecorder()

	middleware.DecodeJSON(h.UserAreasAssign).ServeHTTP(rr, r)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected %d got %d, body=%s", http.StatusNoContent, rr.Code, rr.Body.String())
	}
}

func TestUserAreasAssign_ValidationErrorsListed(t *testing.T) {
	t.Parallel()

	h, _, areas := newHandler(t)
	problems := []string{"areas[0]: Area name is required", "areas[0]: Invalid center coordinates"}
	areas.EXPECT().
		AssignAreas(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&service.AreaValidationError{Errors: problems}).
		Times(1)

	body := `{"areas":[{"name":"","center":{"latitude":95,"longitude":0},"radius":1}]}`
	r := addChiURLParam(httptest.NewRequest(http.MethodPut, "/", bytes.NewBufferString(body)), "id", uuid.NewString())
	rr := httptest.NewRecorder()

	middleware.DecodeJSON(h.UserAreasAssign).ServeHTTP(rr, r)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
	got := decodeJSON[struct {
		Error  string   `json:"error"`
		Errors []string `json:"errors"`
	}](t, rr)
	if len(got.Errors) != 2 || got.Errors[1] != problems[1] {
		t.Fatalf("unexpected errors: %+v", got)
	}
}

func TestUserAreasAssign_UserNotFound(t *testing.T) {
	t.Parallel()

	h, _, areas := newHandler(t)
	areas.EXPECT().AssignAreas(gomock.Any(), gomock.Any(), gomock.Any()).Return(e.ErrNotFound).Times(1)

	r := addChiURLParam(httptest.NewRequest(http.MethodPut, "/", nil), "id", uuid.NewString())
	rr := httptest.NewRecorder()

	h.UserAreasAssign(rr, r, domain.AssignAreasRequest{})

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected %d got %d", http.StatusNotFound, rr.Code)
	}
}

func TestUserAreasAssign_Conflict(t *testing.T) {
	t.Parallel()

	h, _, areas := newHandler(t)
	areas.EXPECT().AssignAreas(gomock.Any(), gomock.Any(), gomock.Any()).Return(e.ErrUniqueViolation).Times(1)

	r := addChiURLParam(httptest.NewRequest(http.MethodPut, "/", nil), "id", uuid.NewString())
	rr := httptest.NewRecorder()

	h.UserAreasAssign(rr, r, domain.AssignAreasRequest{})

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected %d got %d", http.StatusConflict, rr.Code)
	}
}
