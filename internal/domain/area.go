package domain

import (
	"github.com/google/uuid"
)

type AreaType string

const (
	AreaDistrict     AreaType = "district"
	AreaNeighborhood AreaType = "neighborhood"
	AreaZone         AreaType = "zone"
)

func (t AreaType) Valid() bool {
	switch t {
	case AreaDistrict, AreaNeighborhood, AreaZone:
		return true
	}
	return false
}

// Area is an entry of the municipal area catalog.
type Area struct {
	ID                    uuid.UUID        `json:"id"`
	Name                  string           `json:"name"`
	Type                  AreaType         `json:"type"`
	Boundaries            []LocationPoint  `json:"boundaries,omitempty"`
	Center                LocationPoint    `json:"center"`
	Radius                float64          `json:"radius"` // km
	Population            int              `json:"population"`
	Priority              Priority         `json:"priority"` // high, medium or low
	SupervisorID          *uuid.UUID       `json:"supervisorId,omitempty"`
	SLATargets            map[Category]int `json:"slaTargets,omitempty"`
	ActiveIssues          int              `json:"activeIssues"`
	TotalIssues           int              `json:"totalIssues"`
	AverageResolutionTime float64          `json:"averageResolutionTime"` // hours
}

func (a Area) CenterPoint() LocationPoint { return a.Center }

// Coverage returns the circle/polygon part of the catalog entry.
func (a Area) Coverage() GeographicArea {
	return GeographicArea{
		Name:       a.Name,
		Center:     a.Center,
		Radius:     a.Radius,
		Boundaries: a.Boundaries,
	}
}
