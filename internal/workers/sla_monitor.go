package workers

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"cityDesk/internal/domain"
	"cityDesk/internal/sla"
	"cityDesk/pkg/e"
)

type OpenIssueStore interface {
	ListOpen(ctx context.Context) ([]domain.Issue, error)
	MarkEscalated(ctx context.Context, id uuid.UUID, at time.Time) error
	UnmarkEscalated(ctx context.Context, id uuid.UUID) error
}

type EscalationPublisher interface {
	Enqueue(ctx context.Context, event domain.EscalationEvent) error
}

type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// SLAMonitor periodically escalates open issues that outlived their
// escalation window.
type SLAMonitor struct {
	issues   OpenIssueStore
	queue    EscalationPublisher
	cache    CacheInvalidator
	calc     *sla.Calculator
	logger   *slog.Logger
	interval time.Duration
	poolSize int
	now      func() time.Time
}

func NewSLAMonitor(
	issues OpenIssueStore,
	queue EscalationPublisher,
	cache CacheInvalidator,
	calc *sla.Calculator,
	logger *slog.Logger,
	interval time.Duration,
	poolSize int,
) *SLAMonitor {
	if calc == nil {
		calc = sla.NewCalculator(nil)
	}
	if poolSize <= 0 {
		poolSize = 4
	}
	return &SLAMonitor{
		issues:   issues,
		queue:    queue,
		cache:    cache,
		calc:     calc,
		logger:   logger,
		interval: interval,
		poolSize: poolSize,
		now:      time.Now,
	}
}

// WithClock replaces time.Now, mainly for tests.
func (m *SLAMonitor) WithClock(now func() time.Time) *SLAMonitor {
	m.now = now
	return m
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (m *SLAMonitor) Run(ctx context.Context) error {
	m.logger.Info("sla monitor started", slog.Duration("interval", m.interval))

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		if _, err := m.Sweep(ctx); err != nil && ctx.Err() == nil {
			m.logger.Error("sla sweep failed", slog.Any("error", err))
		}

		select {
		case <-ctx.Done():
			m.logger.Info("sla monitor stopped", slog.String("reason", ctx.Err().Error()))
			return nil
		case <-ticker.C:
		}
	}
}

// Sweep escalates every due issue and returns how many were escalated by
// this call.
func (m *SLAMonitor) Sweep(ctx context.Context) (int, error) {
	issues, err := m.issues.ListOpen(ctx)
	if err != nil {
		return 0, err
	}

	now := m.now().UTC()
	jobs := make(chan domain.Issue)
	var (
		wg        sync.WaitGroup
		escalated atomic.Int64
	)

	for i := 0; i < m.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for issue := range jobs {
				if m.escalate(ctx, issue, now) {
					escalated.Add(1)
				}
			}
		}()
	}

produce:
	for _, issue := range issues {
		if issue.IsEscalated || !m.calc.EscalationDue(issue, now) {
			continue
		}
		select {
		case jobs <- issue:
		case <-ctx.Done():
			break produce
		}
	}
	close(jobs)
	wg.Wait()

	n := int(escalated.Load())
	if n > 0 && m.cache != nil {
		if err := m.cache.Invalidate(ctx); err != nil {
			m.logger.Warn("cache.Invalidate failed", slog.Any("error", err))
		}
	}

	m.logger.Debug("sla sweep done",
		slog.Int("open", len(issues)),
		slog.Int("escalated", n),
	)
	return n, ctx.Err()
}

func (m *SLAMonitor) escalate(ctx context.Context, issue domain.Issue, now time.Time) bool {
	log := m.logger.With(slog.String("issue_id", issue.ID.String()))

	if err := m.issues.MarkEscalated(ctx, issue.ID, now); err != nil {
		if errors.Is(err, e.ErrConflict) {
			log.Debug("issue already escalated")
			return false
		}
		log.Error("MarkEscalated failed", slog.Any("error", err))
		return false
	}

	target, _ := m.calc.Calculate(issue.Category, issue.Priority, issue.CreatedAt)
	event := domain.EscalationEvent{
		IssueID:         issue.ID,
		Category:        issue.Category,
		Priority:        issue.Priority,
		Area:            issue.Area,
		AssignedTo:      issue.AssignedTo,
		CreatedAt:       issue.CreatedAt,
		EscalationHours: target.EscalationHours,
		EscalatedAt:     now,
	}
	if err := m.queue.Enqueue(ctx, event); err != nil {
		log.Error("escalation enqueue failed", slog.Any("error", err))
		// roll back so the next sweep retries
		if uerr := m.issues.UnmarkEscalated(ctx, issue.ID); uerr != nil {
			log.Error("UnmarkEscalated failed, escalation lost", slog.Any("error", uerr))
		}
		return false
	}

	log.Info("issue escalated",
		slog.String("category", string(issue.Category)),
		slog.String("priority", string(issue.Priority)),
		slog.String("area", issue.Area),
	)
	return true
}
