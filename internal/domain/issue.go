package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"cityDesk/pkg/e"
)

type Category string

const (
	CategoryPothole       Category = "pothole"
	CategoryStreetLight   Category = "street_light"
	CategoryWaterLeak     Category = "water_leak"
	CategoryTrafficSignal Category = "traffic_signal"
	CategorySidewalk      Category = "sidewalk"
	CategoryDrainage      Category = "drainage"
	CategoryDebris        Category = "debris"
	CategoryOther         Category = "other"
)

var Categories = []Category{
	CategoryPothole,
	CategoryStreetLight,
	CategoryWaterLeak,
	CategoryTrafficSignal,
	CategorySidewalk,
	CategoryDrainage,
	CategoryDebris,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%q: %w", s, e.ErrUnknownCategory)
	}
	return c, nil
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("%q: %w", s, e.ErrUnknownPriority)
	}
	return p, nil
}

type IssueStatus string

const (
	StatusOpen       IssueStatus = "open"
	StatusAssigned   IssueStatus = "assigned"
	StatusInProgress IssueStatus = "in_progress"
	StatusResolved   IssueStatus = "resolved"
	StatusClosed     IssueStatus = "closed"
)

func (s IssueStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusAssigned, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// IsOpen reports whether the issue still counts against its SLA.
func (s IssueStatus) IsOpen() bool {
	return s == StatusOpen || s == StatusAssigned || s == StatusInProgress
}

type IssueLocation struct {
	LocationPoint
	Address  string `json:"address,omitempty"`
	Landmark string `json:"landmark,omitempty"`
}

type Issue struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Location    IssueLocation `json:"location"`
	Category    Category      `json:"category"`
	Priority    Priority      `json:"priority"`
	Status      IssueStatus   `json:"status"`
	Area        string        `json:"area,omitempty"`
	ReportedBy  string        `json:"reportedBy,omitempty"`
	AssignedTo  *uuid.UUID    `json:"assignedTo,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	ResolvedAt  *time.Time    `json:"resolvedAt,omitempty"`
	SLADeadline *time.Time    `json:"slaDeadline,omitempty"`
	IsEscalated bool          `json:"isEscalated"`
	EscalatedAt *time.Time    `json:"escalatedAt,omitempty"`
}
