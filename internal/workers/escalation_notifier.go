package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cityDesk/internal/domain"
	"cityDesk/pkg/e"
)

type EscalationSource interface {
	Dequeue(ctx context.Context, timeout time.Duration) (domain.EscalationEvent, error)
}

type NotifierOptions struct {
	URL         string
	MaxRetries  int
	Backoff     time.Duration // multiplied by the attempt number
	PollTimeout time.Duration
	Client      *http.Client
}

// EscalationNotifier drains the escalation queue into a webhook.
type EscalationNotifier struct {
	logger *slog.Logger
	queue  EscalationSource
	opts   NotifierOptions
	http   *http.Client
}

func NewEscalationNotifier(logger *slog.Logger, q EscalationSource, opts NotifierOptions) *EscalationNotifier {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	if opts.Backoff <= 0 {
		opts.Backoff = time.Second
	}
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = 5 * time.Second
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &EscalationNotifier{
		logger: logger,
		queue:  q,
		opts:   opts,
		http:   client,
	}
}

func (n *EscalationNotifier) Run(ctx context.Context) error {
	n.logger.Info("escalation notifier started", slog.String("url", n.opts.URL))

	for {
		select {
		case <-ctx.Done():
			n.logger.Info("escalation notifier stopped", slog.String("reason", ctx.Err().Error()))
			return nil
		default:
		}

		event, err := n.queue.Dequeue(ctx, n.opts.PollTimeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || ctx.Err() != nil {
				continue
			}
			n.logger.Error("dequeue failed", slog.Any("error", err))
			sleep(ctx, 500*time.Millisecond)
			continue
		}

		if err := n.Deliver(ctx, event); err != nil {
			n.logger.Error("escalation dropped",
				slog.String("issue_id", event.IssueID.String()),
				slog.Any("error", err),
			)
		}
	}
}

// Deliver POSTs one event, retrying non-2xx responses and transport errors
// with linear backoff.
func (n *EscalationNotifier) Deliver(ctx context.Context, event domain.EscalationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal escalation: %w", err)
	}

	var reason string
	for attempt := 1; attempt <= n.opts.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.opts.URL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("build webhook request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Event-Type", "issue.escalated")

		resp, err := n.http.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				n.logger.Info("escalation delivered",
					slog.String("issue_id", event.IssueID.String()),
					slog.Int("attempt", attempt),
				)
				return nil
			}
			reason = resp.Status
		} else {
			reason = err.Error()
		}

		n.logger.Warn("webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", n.opts.URL),
			slog.String("reason", reason),
		)

		if attempt < n.opts.MaxRetries && !sleep(ctx, time.Duration(attempt)*n.opts.Backoff) {
			return ctx.Err()
		}
	}
	return fmt.Errorf("webhook failed after %d attempts: %s", n.opts.MaxRetries, reason)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
