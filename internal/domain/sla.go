package domain

import (
	"time"

	"github.com/google/uuid"
)

// SLATarget holds resolution and escalation windows in hours.
type SLATarget struct {
	TargetHours     int `json:"target"`
	EscalationHours int `json:"escalation"`
}

type SLAInfo struct {
	TargetHours     int       `json:"targetHours"`
	EscalationHours int       `json:"escalationHours"`
	Deadline        time.Time `json:"deadline"`
	IsEscalated     bool      `json:"isEscalated"`
}

type SLAStatus string

const (
	SLABreached SLAStatus = "breached"
	SLACritical SLAStatus = "critical"
	SLAWarning  SLAStatus = "warning"
	SLANormal   SLAStatus = "normal"
)

type SLAEvaluation struct {
	SLAInfo
	IssueID        uuid.UUID `json:"issueId"`
	Status         SLAStatus `json:"status"`
	HoursRemaining float64   `json:"hoursRemaining"`
	EvaluatedAt    time.Time `json:"evaluatedAt"`
	EscalationDue  bool      `json:"escalationDue"`
}

// EscalationEvent is pushed to the escalation queue when an issue outlives
// its escalation window.
type EscalationEvent struct {
	IssueID         uuid.UUID  `json:"issueId"`
	Category        Category   `json:"category"`
	Priority        Priority   `json:"priority"`
	Area            string     `json:"area,omitempty"`
	AssignedTo      *uuid.UUID `json:"assignedTo,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	EscalationHours int        `json:"escalationHours"`
	EscalatedAt     time.Time  `json:"escalatedAt"`
}
