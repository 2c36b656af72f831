// Package sla maps an issue's category and priority to resolution and
// escalation windows and classifies how close an issue is to its deadline.
package sla

import (
	"encoding/json"
	"fmt"
	"os"

	"cityDesk/internal/domain"
	"cityDesk/pkg/e"
)

// Table is keyed by category, then priority. Hours are whole numbers.
type Table map[domain.Category]map[domain.Priority]domain.SLATarget

func target(t, esc int) domain.SLATarget {
	return domain.SLATarget{TargetHours: t, EscalationHours: esc}
}

var defaultTable = Table{
	domain.CategoryPothole: {
		domain.PriorityLow:      target(168, 240),
		domain.PriorityMedium:   target(72, 96),
		domain.PriorityHigh:     target(24, 36),
		domain.PriorityCritical: target(12, 18),
	},
	domain.CategoryStreetLight: {
		domain.PriorityLow:      target(120, 168),
		domain.PriorityMedium:   target(72, 96),
		domain.PriorityHigh:     target(48, 72),
		domain.PriorityCritical: target(24, 36),
	},
	domain.CategoryWaterLeak: {
		domain.PriorityLow:      target(72, 96),
		domain.PriorityMedium:   target(24, 36),
		domain.PriorityHigh:     target(12, 18),
		domain.PriorityCritical: target(6, 8),
	},
	domain.CategoryTrafficSignal: {
		domain.PriorityLow:      target(48, 72),
		domain.PriorityMedium:   target(24, 36),
		domain.PriorityHigh:     target(8, 12),
		domain.PriorityCritical: target(4, 6),
	},
	domain.CategorySidewalk: {
		domain.PriorityLow:      target(240, 336),
		domain.PriorityMedium:   target(120, 168),
		domain.PriorityHigh:     target(72, 96),
		domain.PriorityCritical: target(24, 36),
	},
	domain.CategoryDrainage: {
		domain.PriorityLow:      target(120, 168),
		domain.PriorityMedium:   target(48, 72),
		domain.PriorityHigh:     target(24, 36),
		domain.PriorityCritical: target(8, 12),
	},
	domain.CategoryDebris: {
		domain.PriorityLow:      target(96, 120),
		domain.PriorityMedium:   target(48, 72),
		domain.PriorityHigh:     target(12, 18),
		domain.PriorityCritical: target(6, 9),
	},
	domain.CategoryOther: {
		domain.PriorityLow:      target(168, 240),
		domain.PriorityMedium:   target(96, 144),
		domain.PriorityHigh:     target(48, 72),
		domain.PriorityCritical: target(24, 36),
	},
}

// DefaultTable returns a copy of the built-in table; callers may modify it.
func DefaultTable() Table {
	return defaultTable.clone()
}

func (t Table) clone() Table {
	out := make(Table, len(t))
	for c, row := range t {
		cp := make(map[domain.Priority]domain.SLATarget, len(row))
		for p, v := range row {
			cp[p] = v
		}
		out[c] = cp
	}
	return out
}

func (t Table) Lookup(category domain.Category, priority domain.Priority) (domain.SLATarget, bool) {
	row, ok := t[category]
	if !ok {
		return domain.SLATarget{}, false
	}
	v, ok := row[priority]
	return v, ok
}

// Validate requires every category and priority to be present, targets to be
// positive and escalation to come strictly after the target.
func (t Table) Validate() error {
	for c := range t {
		if !c.Valid() {
			return fmt.Errorf("category %q: %w", c, e.ErrInvalidSLATable)
		}
	}
	for _, c := range domain.Categories {
		for _, p := range domain.Priorities {
			v, ok := t.Lookup(c, p)
			if !ok {
				return fmt.Errorf("missing %s/%s: %w", c, p, e.ErrInvalidSLATable)
			}
			if v.TargetHours <= 0 {
				return fmt.Errorf("%s/%s target must be positive: %w", c, p, e.ErrInvalidSLATable)
			}
			if v.EscalationHours <= v.TargetHours {
				return fmt.Errorf("%s/%s escalation must exceed target: %w", c, p, e.ErrInvalidSLATable)
			}
		}
	}
	return nil
}

// LoadTable reads a JSON override and merges it over the defaults, so a file
// only needs the cells it changes. Unknown priorities are rejected.
func LoadTable(path string) (Table, error) {
	const op = "sla.LoadTable"

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var override Table
	if err := json.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, e.ErrInvalidSLATable, err)
	}

	table := DefaultTable()
	for c, row := range override {
		if !c.Valid() {
			return nil, fmt.Errorf("%s: category %q: %w", op, c, e.ErrInvalidSLATable)
		}
		for p, v := range row {
			if !p.Valid() {
				return nil, fmt.Errorf("%s: priority %q: %w", op, p, e.ErrInvalidSLATable)
			}
			table[c][p] = v
		}
	}

	if err := table.Validate(); err != nil {
		return nil, e.Wrap(op, err)
	}
	return table, nil
}
