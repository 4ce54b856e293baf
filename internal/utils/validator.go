// internal/utils/validator.go
package utils

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// Phone numbers are opaque strings: an optional leading '+', 7 to 15
// digits, with spaces and dashes tolerated as separators. Storing them
// as integers would silently drop leading zeros.
var phonePattern = regexp.MustCompile(`^\+?[0-9](?:[0-9 \-]*[0-9])?$`)

func init() {
	validate = validator.New()

	// Report fields under their JSON names so error maps line up with
	// the request payload.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// IsValidPhone reports whether the value reads as a phone number.
// Loosely typed order payloads are normalized to strings first, so the
// check lives here rather than behind a struct tag.
func IsValidPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 7 || digits > 15 {
		return false
	}

	return phonePattern.MatchString(phone)
}

// FieldErrors maps each invalid field to its human-readable messages,
// collected across all field-level validators rather than stopping at
// the first failure.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func GetFieldErrors(err error) FieldErrors {
	fieldErrors := make(FieldErrors)

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			fieldErrors.Add(e.Field(), getValidationMessage(e))
		}
	}

	return fieldErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters."
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters."
	case "gt":
		return e.Field() + " must be greater than " + e.Param() + "."
	default:
		return e.Field() + " is invalid."
	}
}
