package geo

import "cityDesk/internal/domain"

// IsPointInCircle is inclusive: a point exactly radius km away is inside.
func IsPointInCircle(point domain.LocationPoint, area domain.GeographicArea) bool {
	return Distance(point, area.Center) <= area.Radius
}

// IsPointInPolygon applies the even-odd ray casting rule with longitude as x
// and latitude as y. Fewer than three vertices never contain anything.
// Points lying exactly on an edge may land on either side.
func IsPointInPolygon(point domain.LocationPoint, boundaries []domain.LocationPoint) bool {
	if len(boundaries) < 3 {
		return false
	}

	x, y := point.Longitude, point.Latitude
	inside := false
	for i, j := 0, len(boundaries)-1; i < len(boundaries); j, i = i, i+1 {
		xi, yi := boundaries[i].Longitude, boundaries[i].Latitude
		xj, yj := boundaries[j].Longitude, boundaries[j].Latitude

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// IsPointInArea is circle OR polygon: a point outside the circle still
// matches when the area has a polygon that contains it.
func IsPointInArea(point domain.LocationPoint, area domain.GeographicArea) bool {
	if IsPointInCircle(point, area) {
		return true
	}
	if len(area.Boundaries) > 0 {
		return IsPointInPolygon(point, area.Boundaries)
	}
	return false
}
