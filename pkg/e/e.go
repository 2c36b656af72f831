package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrDeadline           = errors.New("deadline exceeded")
	ErrCanceled           = errors.New("context canceled")
	ErrUniqueViolation    = errors.New("unique violation")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrQueueEmpty         = errors.New("escalation queue is empty")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownPriority    = errors.New("unknown priority")
	ErrInvalidSLATable    = errors.New("invalid sla table")
)

// WrapError maps driver and context failures onto the sentinels above so
// handlers can switch on them without knowing which storage is configured.
func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		case "23503", "23514":
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if st, ok := status.FromError(err); ok && st.Code() != codes.OK && st.Code() != codes.Unknown {
		switch st.Code() {
		case codes.NotFound:
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		case codes.AlreadyExists:
			return fmt.Errorf("%s: %w", op, ErrUniqueViolation)
		case codes.InvalidArgument, codes.FailedPrecondition:
			return fmt.Errorf("%s: %w", op, ErrInvalidInput)
		case codes.DeadlineExceeded:
			return fmt.Errorf("%s: %w", op, ErrDeadline)
		case codes.Canceled:
			return fmt.Errorf("%s: %w", op, ErrCanceled)
		}
	}
	return fmt.Errorf("%s: %w", op, ErrInternal)
}
