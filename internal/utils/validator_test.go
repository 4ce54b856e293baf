// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	valid := []string{
		"+1234567890",
		"1234567890",
		"+1 555 123 4567",
		"555-123-4567",
		"0712345678",
		"123456789012345", // 15 digits
	}
	for _, phone := range valid {
		assert.True(t, IsValidPhone(phone), "expected valid: %q", phone)
	}

	invalid := []string{
		"",
		"123456",           // too short
		"1234567890123456", // 16 digits
		"call me maybe",
		"+1234567890x",
		"++1234567890",
		"12345 67-",
	}
	for _, phone := range invalid {
		assert.False(t, IsValidPhone(phone), "expected invalid: %q", phone)
	}
}

func TestGetFieldErrorsUsesJSONNames(t *testing.T) {
	type form struct {
		CustomerName  string `json:"customer_name" validate:"required"`
		CustomerEmail string `json:"customer_email" validate:"required,email"`
	}

	err := ValidateStruct(&form{CustomerEmail: "nope"})
	assert.Error(t, err)

	fieldErrors := GetFieldErrors(err)
	assert.Contains(t, fieldErrors, "customer_name")
	assert.Contains(t, fieldErrors, "customer_email")
	assert.Equal(t, []string{"This field is required."}, fieldErrors["customer_name"])
	assert.Equal(t, []string{"Enter a valid email address."}, fieldErrors["customer_email"])
}

func TestFieldErrorsAdd(t *testing.T) {
	fieldErrors := make(FieldErrors)
	fieldErrors.Add("total_amount", "A valid number is required.")
	fieldErrors.Add("total_amount", "Total amount must be greater than zero.")

	assert.Len(t, fieldErrors["total_amount"], 2)
}
