package geo

import (
	"strings"

	"cityDesk/internal/domain"
)

// ValidateGeographicArea collects every problem with an area definition so
// admin forms can show them together.
func ValidateGeographicArea(area domain.GeographicArea) domain.ValidationResult {
	errs := make([]string, 0)

	if strings.TrimSpace(area.Name) == "" {
		errs = append(errs, "Area name is required")
	}
	if area.Radius <= 0 {
		errs = append(errs, "Radius must be greater than 0")
	}
	if area.Center.Latitude < -90 || area.Center.Latitude > 90 {
		errs = append(errs, "Latitude must be between -90 and 90")
	}
	if area.Center.Longitude < -180 || area.Center.Longitude > 180 {
		errs = append(errs, "Longitude must be between -180 and 180")
	}
	if area.Boundaries != nil && len(area.Boundaries) < 3 {
		errs = append(errs, "Polygon boundaries must have at least 3 points")
	}

	return domain.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
