// Package validator adapts go-playground/validator to echo.
package validator

import (
	domainerrors "dealzpark/internal/domain/errors"
	"dealzpark/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New returns a validator that reports failures as *domainerrors.ValidationError keyed by JSON field names.
func New() *CustomValidator {
	return &CustomValidator{validator: usecase.NewValidator()}
}

// Validate checks i against its validate tags.
func (cv *CustomValidator) Validate(i any) error {
	return domainerrors.FromValidator(cv.validator.Struct(i))
}
