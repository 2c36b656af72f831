package e_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cityDesk/pkg/e"
)

func TestWrapError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), e.ErrDeadline},
		{"canceled", context.Canceled, e.ErrCanceled},
		{"no rows", pgx.ErrNoRows, e.ErrNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, e.ErrUniqueViolation},
		{"fk", &pgconn.PgError{Code: "23503"}, e.ErrInvalidInput},
		{"check", &pgconn.PgError{Code: "23514"}, e.ErrInvalidInput},
		{"other pg", &pgconn.PgError{Code: "42P01"}, e.ErrInternal},
		{"firestore not found", status.Error(codes.NotFound, "missing"), e.ErrNotFound},
		{"firestore exists", status.Error(codes.AlreadyExists, "dup"), e.ErrUniqueViolation},
		{"firestore bad arg", status.Error(codes.InvalidArgument, "bad"), e.ErrInvalidInput},
		{"plain", errors.New("boom"), e.ErrInternal},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := e.WrapError(context.Background(), "test.op", tc.err)
			if !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	t.Parallel()

	if err := e.WrapError(context.Background(), "test.op", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
