package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"cityDesk/internal/domain"
	"cityDesk/internal/service"

	mock_service "cityDesk/internal/service/mocks"
)

type ctxKey struct{}

func TestService_ListForUser_Delegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issueSvc := mock_service.NewMockIssueService(ctrl)

	userID := uuid.New()
	want := []domain.Issue{issueAt(1, 2)}

	issueSvc.EXPECT().
		ListForUser(gomock.Any(), userID).
		Return(want, nil).
		Times(1)

	svc := service.NewService(issueSvc, nil)

	got, err := svc.ListForUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected response: got=%+v want=%+v", got, want)
	}
}

func TestService_CreateIssue_ErrorPropagated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issueSvc := mock_service.NewMockIssueService(ctrl)

	req := domain.CreateIssueRequest{Title: "x", Category: domain.CategoryOther, Priority: domain.PriorityLow}
	wantErr := errors.New("boom")

	issueSvc.EXPECT().
		Create(gomock.Any(), req).
		Return(nil, wantErr).
		Times(1)

	svc := service.NewService(issueSvc, nil)

	_, err := svc.CreateIssue(context.Background(), req)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected err=%v got=%v", wantErr, err)
	}
}

func TestService_SLA_PassesContextValue(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issueSvc := mock_service.NewMockIssueService(ctrl)

	id := uuid.New()
	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")

	issueSvc.EXPECT().
		SLA(gomock.Any(), id).
		DoAndReturn(func(got context.Context, _ uuid.UUID) (domain.SLAEvaluation, error) {
			if got.Value(ctxKey{}) != "req-1" {
				t.Errorf("context value lost")
			}
			return domain.SLAEvaluation{IssueID: id, Status: domain.SLANormal}, nil
		}).
		Times(1)

	svc := service.NewService(issueSvc, nil)

	got, err := svc.SLA(ctx, id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.IssueID != id {
		t.Fatalf("unexpected evaluation: %+v", got)
	}
}

func TestService_AreaDelegates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	areaSvc := mock_service.NewMockAreaService(ctrl)
	svc := service.NewService(nil, areaSvc)

	userID := uuid.New()
	area := domain.GeographicArea{Name: "a", Radius: 1}
	point := domain.LocationPoint{Latitude: 1, Longitude: 1}
	closest := &domain.Area{Name: "a"}

	areaSvc.EXPECT().List(gomock.Any()).Return([]domain.Area{*closest}, nil).Times(1)
	areaSvc.EXPECT().Validate(area).Return(domain.ValidationResult{IsValid: true}).Times(1)
	areaSvc.EXPECT().AssignAreas(gomock.Any(), userID, []domain.GeographicArea{area}).Return(nil).Times(1)
	areaSvc.EXPECT().Closest(gomock.Any(), point).Return(closest, nil).Times(1)

	if got, err := svc.ListAreas(context.Background()); err != nil || len(got) != 1 {
		t.Fatalf("ListAreas: got=%v err=%v", got, err)
	}
	if res := svc.ValidateArea(area); !res.IsValid {
		t.Fatalf("ValidateArea: %+v", res)
	}
	if err := svc.AssignAreas(context.Background(), userID, []domain.GeographicArea{area}); err != nil {
		t.Fatalf("AssignAreas: %v", err)
	}
	if got, err := svc.ClosestArea(context.Background(), point); err != nil || got != closest {
		t.Fatalf("ClosestArea: got=%v err=%v", got, err)
	}
}
