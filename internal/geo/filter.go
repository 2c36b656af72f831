package geo

import "cityDesk/internal/domain"

// DefaultProximityRadiusKM bounds the proximity fallback around a user's location.
const DefaultProximityRadiusKM = 50.0

// FilterIssuesByUserAreas keeps issues inside at least one of the user's
// assigned areas. A user without assigned areas sees everything when they
// are a SuperAdmin and nothing otherwise. The catalog is not consulted for
// containment; assigned areas are self-contained value objects.
func FilterIssuesByUserAreas(issues []domain.Issue, user domain.User, _ []domain.Area) []domain.Issue {
	if len(user.GeographicAreas) == 0 {
		if user.Role == domain.RoleSuperAdmin {
			return issues
		}
		return []domain.Issue{}
	}

	out := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		for _, area := range user.GeographicAreas {
			if IsPointInArea(issue.Location.LocationPoint, area) {
				out = append(out, issue)
				break
			}
		}
	}
	return out
}

// FilterIssuesByProximity is the fallback for users without assigned areas.
// Without a location it fails open and returns every issue.
func FilterIssuesByProximity(issues []domain.Issue, user domain.User) []domain.Issue {
	if user.Location == nil {
		return issues
	}
	return GetIssuesWithinRadius(issues, *user.Location, DefaultProximityRadiusKM)
}

// GetIssuesWithinRadius keeps issues at most radius km from center, in input order.
func GetIssuesWithinRadius(issues []domain.Issue, center domain.LocationPoint, radius float64) []domain.Issue {
	out := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if Distance(center, issue.Location.LocationPoint) <= radius {
			out = append(out, issue)
		}
	}
	return out
}
