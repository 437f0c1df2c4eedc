package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidations registers the binding validations used by the
// DTOs in this package on the given validator engine. Must be called once
// at startup before any request binding happens.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("decimalgtzero", decimalGTZero)
}

// decimalGTZero validates that a decimal.Decimal field is strictly positive.
func decimalGTZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.GreaterThan(decimal.Zero)
}
