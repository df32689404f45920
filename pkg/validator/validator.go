package validator

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator using go-playground/validator,
// enforcing the tag rules on intake request payloads before they reach a
// handler.
type RequestValidator struct {
	v *validator.Validate
}

// New creates a new RequestValidator instance
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	return &RequestValidator{v: v}
}

// Validate performs struct validation
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}
