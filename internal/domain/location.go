package domain

// LocationPoint is a WGS84 coordinate. Latitude is -90..90, longitude -180..180.
type LocationPoint struct {
	Latitude  float64 `json:"latitude" firestore:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" firestore:"longitude" validate:"lng"`
}

// GeographicArea is a coverage zone assigned to a user. It is a value object,
// independent of the Area catalog.
type GeographicArea struct {
	Name       string          `json:"name" firestore:"name"`
	Center     LocationPoint   `json:"center" firestore:"center"`
	Radius     float64         `json:"radius" firestore:"radius"` // km
	Boundaries []LocationPoint `json:"boundaries,omitempty" firestore:"boundaries,omitempty"`
}

func (a GeographicArea) CenterPoint() LocationPoint { return a.Center }

type GeographicStats struct {
	TotalIssues     int     `json:"totalIssues"`
	IssuesInRange   int     `json:"issuesInRange"`
	AverageDistance float64 `json:"averageDistance"`
	CoverageArea    float64 `json:"coverageArea"`
}

type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}
