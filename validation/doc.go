// Package validation provides struct-tag validation for itkit settings.
//
// It wraps go-playground/validator and reports failures as a single
// *errors.AppError with one entry per offending field.
//
//	type Settings struct {
//	    MeterName string `mapstructure:"meter_name" validate:"required"`
//	}
//	err := validation.Validate(settings)
package validation
