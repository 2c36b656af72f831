package sla

import (
	"time"

	"cityDesk/internal/domain"
)

const (
	CriticalThresholdHours = 6.0
	WarningThresholdHours  = 24.0
)

type Calculator struct {
	table Table
}

// NewCalculator uses the built-in table when t is nil.
func NewCalculator(t Table) *Calculator {
	if t == nil {
		t = DefaultTable()
	}
	return &Calculator{table: t}
}

// Calculate returns false for an unknown category or priority; the caller
// treats that as "no SLA applies".
func (c *Calculator) Calculate(category domain.Category, priority domain.Priority, createdAt time.Time) (domain.SLAInfo, bool) {
	v, ok := c.table.Lookup(category, priority)
	if !ok {
		return domain.SLAInfo{}, false
	}
	return domain.SLAInfo{
		TargetHours:     v.TargetHours,
		EscalationHours: v.EscalationHours,
		Deadline:        createdAt.Add(hours(v.TargetHours)),
		IsEscalated:     false,
	}, true
}

// EscalationDue reports whether the issue was still unresolved once its
// escalation window from createdAt had passed.
func (c *Calculator) EscalationDue(issue domain.Issue, now time.Time) bool {
	v, ok := c.table.Lookup(issue.Category, issue.Priority)
	if !ok {
		return false
	}
	at := now
	if issue.ResolvedAt != nil {
		at = *issue.ResolvedAt
	}
	return !at.Before(issue.CreatedAt.Add(hours(v.EscalationHours)))
}

// Evaluate classifies the issue against its stored deadline, falling back to
// the computed one. Resolved issues are frozen at their resolution time.
func (c *Calculator) Evaluate(issue domain.Issue, now time.Time) (domain.SLAEvaluation, bool) {
	info, ok := c.Calculate(issue.Category, issue.Priority, issue.CreatedAt)
	if !ok {
		return domain.SLAEvaluation{}, false
	}
	if issue.SLADeadline != nil {
		info.Deadline = *issue.SLADeadline
	}
	info.IsEscalated = issue.IsEscalated

	at := now
	if issue.ResolvedAt != nil {
		at = *issue.ResolvedAt
	}

	return domain.SLAEvaluation{
		SLAInfo:        info,
		IssueID:        issue.ID,
		Status:         Classify(info.Deadline, at),
		HoursRemaining: HoursRemaining(info.Deadline, at),
		EvaluatedAt:    at,
		EscalationDue:  c.EscalationDue(issue, now),
	}, true
}

func HoursRemaining(deadline, now time.Time) float64 {
	return deadline.Sub(now).Hours()
}

// Classify buckets the time left before deadline: breached below zero,
// critical under 6h, warning under 24h, normal otherwise.
func Classify(deadline, now time.Time) domain.SLAStatus {
	left := HoursRemaining(deadline, now)
	switch {
	case left < 0:
		return domain.SLABreached
	case left < CriticalThresholdHours:
		return domain.SLACritical
	case left < WarningThresholdHours:
		return domain.SLAWarning
	default:
		return domain.SLANormal
	}
}

func hours(h int) time.Duration {
	return time.Duration(h) * time.Hour
}
