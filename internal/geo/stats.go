package geo

import (
	"math"

	"github.com/shopspring/decimal"

	"cityDesk/internal/domain"
)

// GetGeographicStats summarises how many issues a user covers and how far
// they sit from the nearest assigned area center. Coverage is a plain sum of
// circle areas; overlaps are counted twice.
func GetGeographicStats(issues []domain.Issue, user domain.User, areas []domain.Area) domain.GeographicStats {
	inRange := FilterIssuesByUserAreas(issues, user, areas)

	var avg float64
	if len(inRange) > 0 && len(user.GeographicAreas) > 0 {
		var total float64
		for _, issue := range inRange {
			closest := GetClosestArea(issue.Location.LocationPoint, user.GeographicAreas)
			total += Distance(issue.Location.LocationPoint, closest.Center)
		}
		avg = total / float64(len(inRange))
	}

	var coverage float64
	for _, area := range user.GeographicAreas {
		coverage += math.Pi * area.Radius * area.Radius
	}

	return domain.GeographicStats{
		TotalIssues:     len(issues),
		IssuesInRange:   len(inRange),
		AverageDistance: round2(avg),
		CoverageArea:    round2(coverage),
	}
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
