package workers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"cityDesk/internal/domain"
	"cityDesk/pkg/e"
)

var sweepNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeStore struct {
	mu        sync.Mutex
	open      []domain.Issue
	listErr   error
	conflicts map[uuid.UUID]bool
	escalated map[uuid.UUID]bool
	marked    []uuid.UUID
	unmarked  []uuid.UUID
}

func (f *fakeStore) ListOpen(context.Context) ([]domain.Issue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Issue, len(f.open))
	copy(out, f.open)
	for i := range out {
		if f.escalated[out[i].ID] {
			out[i].IsEscalated = true
		}
	}
	return out, f.listErr
}

func (f *fakeStore) MarkEscalated(_ context.Context, id uuid.UUID, _ time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conflicts[id] || f.escalated[id] {
		return e.ErrConflict
	}
	if f.escalated == nil {
		f.escalated = make(map[uuid.UUID]bool)
	}
	f.escalated[id] = true
	f.marked = append(f.marked, id)
	return nil
}

func (f *fakeStore) UnmarkEscalated(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.escalated, id)
	f.unmarked = append(f.unmarked, id)
	return nil
}

type fakeQueue struct {
	mu     sync.Mutex
	events []domain.EscalationEvent
	// failures makes the next n Enqueue calls fail
	failures int
}

func (q *fakeQueue) Enqueue(_ context.Context, ev domain.EscalationEvent) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.failures > 0 {
		q.failures--
		return errors.New("redis: connection refused")
	}
	q.events = append(q.events, ev)
	return nil
}

type fakeCache struct {
	mu    sync.Mutex
	calls int
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return nil
}

func openIssue(category domain.Category, priority domain.Priority, age time.Duration) domain.Issue {
	return domain.Issue{
		ID:        uuid.New(),
		Category:  category,
		Priority:  priority,
		Status:    domain.StatusOpen,
		Area:      "Downtown",
		CreatedAt: sweepNow.Add(-age),
	}
}

func TestSLAMonitor_Sweep_EscalatesDueIssues(t *testing.T) {
	t.Parallel()

	due := openIssue(domain.CategoryPothole, domain.PriorityCritical, 20*time.Hour) // escalation 18h
	notDue := openIssue(domain.CategoryWaterLeak, domain.PriorityLow, 10*time.Hour)
	already := openIssue(domain.CategoryDebris, domain.PriorityCritical, 50*time.Hour)
	already.IsEscalated = true
	raced := openIssue(domain.CategoryTrafficSignal, domain.PriorityCritical, 7*time.Hour) // escalation 6h

	store := &fakeStore{
		open:      []domain.Issue{due, notDue, already, raced},
		conflicts: map[uuid.UUID]bool{raced.ID: true},
	}
	queue := &fakeQueue{}
	cache := &fakeCache{}

	m := NewSLAMonitor(store, queue, cache, nil, discardLogger(), time.Minute, 2).
		WithClock(func() time.Time { return sweepNow })

	n, err := m.Sweep(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 escalation, got %d", n)
	}
	if len(store.marked) != 1 || store.marked[0] != due.ID {
		t.Fatalf("unexpected marked ids: %v", store.marked)
	}
	if len(queue.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(queue.events))
	}
	ev := queue.events[0]
	if ev.IssueID != due.ID || ev.EscalationHours != 18 || !ev.EscalatedAt.Equal(sweepNow) || ev.Area != "Downtown" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if cache.calls != 1 {
		t.Fatalf("expected cache invalidated once, got %d", cache.calls)
	}
}

func TestSLAMonitor_Sweep_EnqueueFailureRetriedNextSweep(t *testing.T) {
	t.Parallel()

	due := openIssue(domain.CategoryPothole, domain.PriorityCritical, 20*time.Hour)
	store := &fakeStore{open: []domain.Issue{due}}
	queue := &fakeQueue{failures: 1}
	cache := &fakeCache{}

	m := NewSLAMonitor(store, queue, cache, nil, discardLogger(), time.Minute, 1).
		WithClock(func() time.Time { return sweepNow })

	n, err := m.Sweep(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 0 || len(queue.events) != 0 {
		t.Fatalf("failed enqueue must not count, got n=%d events=%d", n, len(queue.events))
	}
	if len(store.unmarked) != 1 || store.unmarked[0] != due.ID {
		t.Fatalf("expected escalation rolled back, unmarked=%v", store.unmarked)
	}
	if cache.calls != 0 {
		t.Fatalf("cache invalidated without an escalation")
	}

	n, err = m.Sweep(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 1 || len(queue.events) != 1 || queue.events[0].IssueID != due.ID {
		t.Fatalf("expected retry to enqueue, got n=%d events=%+v", n, queue.events)
	}

	n, err = m.Sweep(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 0 || len(queue.events) != 1 {
		t.Fatalf("expected a single event overall, got n=%d events=%d", n, len(queue.events))
	}
}

func TestSLAMonitor_Sweep_NothingDue(t *testing.T) {
	t.Parallel()

	store := &fakeStore{open: []domain.Issue{
		openIssue(domain.CategorySidewalk, domain.PriorityLow, time.Hour),
	}}
	queue := &fakeQueue{}
	cache := &fakeCache{}

	m := NewSLAMonitor(store, queue, cache, nil, discardLogger(), time.Minute, 0).
		WithClock(func() time.Time { return sweepNow })

	n, err := m.Sweep(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 0 || len(queue.events) != 0 || cache.calls != 0 {
		t.Fatalf("expected no side effects, got n=%d events=%d invalidations=%d", n, len(queue.events), cache.calls)
	}
}

func TestSLAMonitor_Sweep_ListError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("db down")
	m := NewSLAMonitor(&fakeStore{listErr: wantErr}, &fakeQueue{}, &fakeCache{}, nil, discardLogger(), time.Minute, 1)

	if _, err := m.Sweep(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestSLAMonitor_Run_StopsOnCancel(t *testing.T) {
	t.Parallel()

	store := &fakeStore{open: []domain.Issue{
		openIssue(domain.CategoryPothole, domain.PriorityCritical, 20*time.Hour),
	}}
	queue := &fakeQueue{}

	m := NewSLAMonitor(store, queue, nil, nil, discardLogger(), time.Hour, 1).
		WithClock(func() time.Time { return sweepNow })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for {
		queue.mu.Lock()
		got := len(queue.events)
		queue.mu.Unlock()
		if got == 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("initial sweep did not run")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("monitor did not stop")
	}
}
