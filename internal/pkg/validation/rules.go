package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance
var validate = validator.New()

// Name validation min/max length
var (
	NameMinLength = 2
	NameMaxLength = 100
)

// IsValidEmail reports whether the value is a well-formed email address.
func IsValidEmail(value string) bool {
	return validate.Var(strings.TrimSpace(value), "required,email") == nil
}

// IsBlank reports whether the value is empty after trimming whitespace.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
