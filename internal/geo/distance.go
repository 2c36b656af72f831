// Package geo decides which issues fall inside a user's coverage and derives
// distance statistics. Every function is pure and safe for concurrent use.
package geo

import (
	"math"

	"cityDesk/internal/domain"
)

// EarthRadiusKM is the mean Earth radius used by the haversine formula.
const EarthRadiusKM = 6371.0

// Distance returns the great-circle distance between two points in km.
// Invalid coordinates are not checked; NaN propagates.
func Distance(p1, p2 domain.LocationPoint) float64 {
	return haversine(p1.Latitude, p1.Longitude, p2.Latitude, p2.Longitude)
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKM * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// CalculateCenterPoint averages latitude and longitude. This is a flat mean,
// only meaningful for city-scale clusters. Empty input yields {0,0}.
func CalculateCenterPoint(points []domain.LocationPoint) domain.LocationPoint {
	if len(points) == 0 {
		return domain.LocationPoint{}
	}

	var lat, lng float64
	for _, p := range points {
		lat += p.Latitude
		lng += p.Longitude
	}
	n := float64(len(points))
	return domain.LocationPoint{Latitude: lat / n, Longitude: lng / n}
}

// Centered is anything with a center point: catalog areas and assigned areas.
type Centered interface {
	CenterPoint() domain.LocationPoint
}

// GetClosestArea returns the area whose center is nearest to point, or nil
// when areas is empty. Ties go to the first one encountered.
func GetClosestArea[T Centered](point domain.LocationPoint, areas []T) *T {
	var (
		closest *T
		best    = math.Inf(1)
	)
	for i := range areas {
		d := Distance(point, areas[i].CenterPoint())
		if closest == nil || d < best {
			closest = &areas[i]
			best = d
		}
	}
	return closest
}
