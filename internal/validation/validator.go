package validation

import (
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a struct-tag validator with the custom rules used by the app
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("notblank", NotBlank)
	return &Validator{validate: v}
}

// NotBlank fails for strings that are empty after trimming whitespace.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Struct validates s against its `validate` tags and converts failures to a ValidationError.
// Field names are lower-cased. ranges maps a field to its [min, max] bounds for messages.
func (v *Validator) Struct(s interface{}, ranges map[string][2]int) *ValidationError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationError := NewValidationError()

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		validationError.AddInvalidValueError("input", s, err.Error())
		return validationError
	}

	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "notblank", "required":
			validationError.AddRequiredError(field)
		case "min", "max":
			bounds := ranges[field]
			validationError.AddInvalidRangeError(field, fe.Value(), bounds[0], bounds[1])
		default:
			validationError.AddInvalidValueError(field, fe.Value(), fe.Tag())
		}
	}

	return validationError
}
