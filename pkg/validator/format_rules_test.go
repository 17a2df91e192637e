package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestIsAlphabetic(t *testing.T) {
	check := validator.IsAlphabetic.Field("Name")

	t.Run("passes letters", func(t *testing.T) {
		assert.True(t, check.Validate("Ada").IsValid())
	})

	t.Run("fails other characters", func(t *testing.T) {
		assert.Equal(t, "Name must be alphabetic", check.Validate("Ada1").Message())
		assert.False(t, check.Validate("Ada Lovelace").IsValid())
		assert.False(t, check.Validate("Zoë").IsValid())
	})

	t.Run("passes missing values", func(t *testing.T) {
		assert.True(t, check.Validate(nil).IsValid())
		assert.True(t, check.Validate("").IsValid())
		assert.True(t, check.Validate("  ").IsValid())
	})
}

func TestIsAlphaNumeric(t *testing.T) {
	check := validator.IsAlphaNumeric.Field("Username")

	assert.True(t, check.Validate("ada1815").IsValid())
	assert.Equal(t, "Username must be alphanumeric", check.Validate("ada_1815").Message())
	assert.True(t, check.Validate(nil).IsValid())
}

func TestIsNumeric(t *testing.T) {
	check := validator.IsNumeric.Field("Age")

	t.Run("passes digits", func(t *testing.T) {
		assert.True(t, check.Validate("42").IsValid())
		assert.True(t, check.Validate(42).IsValid())
		assert.True(t, check.Validate(uint8(7)).IsValid())
	})

	t.Run("fails non-digits", func(t *testing.T) {
		assert.Equal(t, "Age must be numeric", check.Validate("4a").Message())
		assert.False(t, check.Validate(-1).IsValid())
		assert.False(t, check.Validate(1.5).IsValid())
		assert.False(t, check.Validate("1 000").IsValid())
	})

	t.Run("passes absent value", func(t *testing.T) {
		assert.True(t, check.Validate(nil).IsValid())
	})
}

func TestIsEmail(t *testing.T) {
	check := validator.IsEmail.Field("Email")

	for _, email := range []string{"user@example.com", "first.last+tag@sub.example.org"} {
		assert.True(t, check.Validate(email).IsValid(), email)
	}

	for _, email := range []string{"user", "user@", "@example.com", "user@localhost", "user@example..com", "Ada <ada@example.com>"} {
		assert.Equal(t, "Email must be a valid email address", check.Validate(email).Message(), email)
	}
}

func TestIsURL(t *testing.T) {
	check := validator.IsURL.Field("Website")

	assert.True(t, check.Validate("https://example.com/path?q=1").IsValid())
	assert.Equal(t, "Website must be a valid URL", check.Validate("example.com").Message())
	assert.False(t, check.Validate("/relative/path").IsValid())
	assert.True(t, check.Validate(nil).IsValid())
}

func TestMatchesPattern(t *testing.T) {
	check := validator.MatchesPattern(regexp.MustCompile(`^[A-Z]{3}$`)).Field("Code")

	t.Run("passes matching values", func(t *testing.T) {
		assert.True(t, check.Validate("ABC").IsValid())
	})

	t.Run("fails non-matching values", func(t *testing.T) {
		assert.Equal(t, "Code must match pattern ^[A-Z]{3}$", check.Validate("abc").Message())
	})

	t.Run("passes missing values", func(t *testing.T) {
		assert.True(t, check.Validate(nil).IsValid())
		assert.True(t, check.Validate("").IsValid())
	})

	t.Run("accepts message override", func(t *testing.T) {
		v := validator.MatchesPattern(regexp.MustCompile(`^\d{5}$`))
		assert.Equal(t, "Invalid ZIP", v.With(validator.WithMessage("Invalid ZIP")).Validate("1234").Message())
	})
}
