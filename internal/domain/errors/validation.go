package errors

import (
	"fmt"
	"reflect"
	"strings"

	"dealzpark/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failing input field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError is returned when input fails validation. It enumerates every failing field.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError creates a validation error for the given fields.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// NewFieldError creates a validation error for a single field.
func NewFieldError(field, rule, message string) *ValidationError {
	return NewValidationError(FieldError{Field: field, Rule: rule, Message: message})
}

// FromValidator converts go-playground validation failures into a ValidationError.
// Errors of any other kind are returned unchanged.
func FromValidator(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: describe(fe),
		})
	}

	return NewValidationError(fields...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}

		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be an RFC 3339 timestamp", fe.Field())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}

// Fields returns the failing fields.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return ErrValidationFailed.Message() + ": " + e.Details()
}

// Is lets errors.Is(err, ErrValidationFailed) match validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return ErrValidationFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details joins the field messages.
func (e *ValidationError) Details() string {
	messages := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		messages = append(messages, f.Message)
	}

	return strings.Join(messages, "; ")
}
