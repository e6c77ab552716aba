package usecase

import (
	"reflect"
	"strings"

	domainerrors "dealzpark/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var inputValidator = NewValidator()

// NewValidator returns a validator that reports fields by their JSON names.
// It also knows the notblank rule, which rejects whitespace-only strings.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return v
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// ValidateInput checks input against its validate tags and returns a *domainerrors.ValidationError on failure.
func ValidateInput(input any) error {
	return domainerrors.FromValidator(inputValidator.Struct(input))
}
