package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestMatchesField(t *testing.T) {
	check := validator.MatchesField("password", "Password").Field("Confirmation")

	t.Run("passes equal values", func(t *testing.T) {
		assert.True(t, check("secret", validator.Values{"password": "secret"}).IsValid())
	})

	t.Run("fails different values", func(t *testing.T) {
		res := check("secrte", validator.Values{"password": "secret"})
		assert.Equal(t, "Confirmation must match Password", res.Message())
	})

	t.Run("resolves nested fields", func(t *testing.T) {
		nested := validator.MatchesField("account.email", "Email").Field("Confirm")
		all := validator.Values{"account": map[string]any{"email": "ada@example.com"}}

		assert.True(t, nested("ada@example.com", all).IsValid())
		assert.False(t, nested("bob@example.com", all).IsValid())
	})

	t.Run("passes missing values while the other field is set", func(t *testing.T) {
		all := validator.Values{"password": "secret"}
		assert.True(t, check(nil, all).IsValid())
		assert.True(t, check("  ", all).IsValid())
	})

	t.Run("requires the value when composed with IsRequired", func(t *testing.T) {
		required := validator.Compose(validator.IsRequired, validator.MatchesField("password", "Password")).Field("Confirmation")
		res := required(nil, validator.Values{"password": "secret"})
		assert.Equal(t, "Confirmation is required", res.Message())
	})

	t.Run("compares values as text", func(t *testing.T) {
		all := validator.Values{"pin": 1234}
		pin := validator.MatchesField("pin", "PIN").Field("Confirm PIN")

		assert.True(t, pin("1234", all).IsValid())
		assert.True(t, pin(1234, all).IsValid())
		assert.False(t, pin("1235", all).IsValid())
	})

	t.Run("compares against absent field outside a record", func(t *testing.T) {
		assert.False(t, check.Validate("secret").IsValid())
		assert.True(t, check.Validate(nil).IsValid())
	})
}
