package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,min=2"`
	}

	v := NewValidator()

	assert.NoError(t, v.ValidateStruct(form{Email: "a@b.com", Name: "ok"}))
	assert.Error(t, v.ValidateStruct(form{Email: "not-an-email", Name: "ok"}))
	assert.Error(t, v.ValidateStruct(form{Email: "a@b.com", Name: "x"}))
	assert.Error(t, v.ValidateStruct(form{}))
}

func TestFormatValidationErrors(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Level string `validate:"oneof=Bachelor Master"`
	}

	v := NewValidator()
	err := v.ValidateStruct(form{Email: "bad", Level: "Doctorate"})
	require.Error(t, err)

	formatted := FormatValidationErrors(err)
	assert.Equal(t, "Invalid email format", formatted["email"])
	assert.Contains(t, formatted["level"], "must be one of")
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"user.name+tag@sub.example.co", true},
		{"", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidateEmail(tt.email), tt.email)
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.Equal(t, "hello", SanitizeString("he\x00llo"))
	assert.Equal(t, "", SanitizeString("   "))
}
