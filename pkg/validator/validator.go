// Package validator holds the process-wide struct validator with the
// coordinate rules used by request DTOs and LocationPoint.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// MaxRadiusKM bounds coverage circles and nearby searches.
const MaxRadiusKM = 500.0

var validate = newValidate()

// rules maps a validation tag to its bound check.
var rules = map[string]func(v float64) bool{
	"lat":       func(v float64) bool { return v >= -90 && v <= 90 },
	"lng":       func(v float64) bool { return v >= -180 && v <= 180 },
	"radius_km": func(v float64) bool { return v > 0 && v <= MaxRadiusKM },
}

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	for tag, ok := range rules {
		check := ok
		// registration only fails on an empty tag or nil func
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().Float())
		})
	}
	return v
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
