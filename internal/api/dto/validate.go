package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phonePattern matches the same numbers the original form accepted:
// optional country code, then a ten digit number with common separators.
var phonePattern = regexp.MustCompile(`^(\+\d{1,2}\s)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate runs struct tag validation and returns per-field rule names
// suitable for the error envelope's details map.
func Validate(payload any) map[string]any {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	details := map[string]any{}
	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range fieldErrors {
			details[fieldError.Field()] = fieldError.Tag()
		}
	}
	if len(details) == 0 {
		details["payload"] = "invalid"
	}
	return details
}
