package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

func TestCombine(t *testing.T) {
	failOdd := isEven.Field("A")
	failOddB := isEven.Field("B")

	t.Run("returns empty errors when every field passes", func(t *testing.T) {
		validate := validator.Combine(map[string]validator.Check{"a": failOdd, "b": failOddB})

		errs := validate(validator.Values{"a": 2, "b": 4})
		require.NotNil(t, errs)
		assert.Empty(t, errs)
		assert.False(t, errs.HasErrors())
		assert.NoError(t, errs.Err())
	})

	t.Run("records only failing fields", func(t *testing.T) {
		validate := validator.Combine(map[string]validator.Check{"a": failOdd, "b": failOddB})

		errs := validate(validator.Values{"a": 1, "b": 2})
		assert.Equal(t, validator.Errors{"a": validator.Fail("A must be even")}, errs)
		assert.True(t, errs.Has("a"))
		assert.False(t, errs.Has("b"))
		assert.True(t, errs.Get("b").IsValid())
	})

	t.Run("validates absent fields against nil", func(t *testing.T) {
		validate := validator.Combine(map[string]validator.Check{
			"name": validator.Compose(validator.IsRequired, validator.IsAlphabetic).Field("Name"),
			"age":  validator.IsNumeric.Field("Age"),
		})

		errs := validate(validator.Values{})
		assert.Equal(t, validator.Errors{"name": validator.Fail("Name is required")}, errs)
	})

	t.Run("ignores record keys without a check", func(t *testing.T) {
		validate := validator.Combine(map[string]validator.Check{"a": failOdd})

		errs := validate(validator.Values{"a": 2, "extra": 3})
		assert.Empty(t, errs)
	})

	t.Run("handles nil record", func(t *testing.T) {
		validate := validator.Combine(map[string]validator.Check{"name": validator.IsRequired.Field("Name")})

		errs := validate(nil)
		assert.Equal(t, "Name is required", errs.Get("name").Message())
	})

	t.Run("skips nil checks", func(t *testing.T) {
		validate := validator.Combine(map[string]validator.Check{"a": nil, "b": failOddB})

		errs := validate(validator.Values{"b": 3})
		assert.Equal(t, []string{"b"}, errs.Fields())
	})

	t.Run("keeps multiple results", func(t *testing.T) {
		name := validator.Compose(validator.IsAlphabetic, validator.HasLengthGreaterThan(3))
		validate := validator.Combine(map[string]validator.Check{
			"name": name.With(validator.WithField("Name"), validator.Multiple()),
		})

		errs := validate(validator.Values{"name": "42"})
		assert.Equal(t, []string{"Name must be alphabetic", "Name must be longer than 3 characters"},
			errs.Get("name").Messages())
	})

	t.Run("resolves nested paths", func(t *testing.T) {
		validate := validator.Combine(map[string]validator.Check{
			"contact.email": validator.Compose(validator.IsRequired, validator.IsEmail).Field("Email"),
			"contact.phone": validator.IsNumeric.Field("Phone"),
		})

		errs := validate(validator.Values{
			"contact": map[string]any{"phone": "555-1234"},
		})
		assert.Equal(t, []string{"contact.email", "contact.phone"}, errs.Fields())
		assert.Equal(t, "Email is required", errs.Get("contact.email").Message())

		errs = validate(validator.Values{
			"contact": validator.Values{"email": "ada@example.com", "phone": "5551234"},
		})
		assert.Empty(t, errs)
	})

	t.Run("validates each slice element", func(t *testing.T) {
		validate := validator.Combine(map[string]validator.Check{
			"phones[]": validator.IsNumeric.Field("Phone"),
		})

		errs := validate(validator.Values{"phones": []string{"123", "abc", "456", "x"}})
		assert.Equal(t, []string{"phones[1]", "phones[3]"}, errs.Fields())
		assert.Equal(t, "Phone must be numeric", errs.Get("phones[1]").Message())
	})

	t.Run("validates fields of slice elements", func(t *testing.T) {
		validate := validator.Combine(map[string]validator.Check{
			"cars[].make": validator.IsRequired.Field("Make"),
			"cars[].year": validator.IsNumeric.Field("Year"),
		})

		errs := validate(validator.Values{"cars": []any{
			map[string]any{"make": "Saab", "year": 1999},
			map[string]any{"year": "nineteen"},
		}})
		assert.Equal(t, validator.Errors{
			"cars[1].make": validator.Fail("Make is required"),
			"cars[1].year": validator.Fail("Year must be numeric"),
		}, errs)
	})

	t.Run("missing slices address nothing", func(t *testing.T) {
		validate := validator.Combine(map[string]validator.Check{
			"phones[]":    validator.IsRequired.Field("Phone"),
			"cars[].make": validator.IsRequired.Field("Make"),
		})

		assert.Empty(t, validate(validator.Values{}))
		assert.Empty(t, validate(validator.Values{"phones": "123"}))
	})

	t.Run("passes the whole record to checks", func(t *testing.T) {
		validate := validator.Combine(map[string]validator.Check{
			"password": validator.IsRequired.Field("Password"),
			"confirm":  validator.MatchesField("password", "Password").Field("Confirmation"),
			"company": validator.IsRequiredIf(func(all validator.Values) bool {
				return all["account"] == "business"
			}).Field("Company"),
		})

		errs := validate(validator.Values{"password": "secret", "confirm": "secret", "account": "personal"})
		assert.Empty(t, errs)

		errs = validate(validator.Values{"password": "secret", "confirm": "typo", "account": "business"})
		assert.Equal(t, validator.Errors{
			"confirm": validator.Fail("Confirmation must match Password"),
			"company": validator.Fail("Company is required"),
		}, errs)
	})

	t.Run("serializes the record before validating", func(t *testing.T) {
		validate := validator.Combine(map[string]validator.Check{
			"name": validator.IsAlphabetic.Field("Name"),
		}, validator.WithSerializer(func(v validator.Values) validator.Values {
			out := validator.Values{}
			for k, val := range v {
				if s, ok := val.(string); ok {
					out[k] = strings.TrimSpace(s)
				}
			}
			return out
		}), nil)

		assert.Empty(t, validate(validator.Values{"name": "  Ada  "}))
	})

	t.Run("does not mutate the input record", func(t *testing.T) {
		validate := validator.Combine(map[string]validator.Check{"name": validator.IsRequired.Field("Name")})
		record := validator.Values{"other": 1}

		validate(record)
		assert.Equal(t, validator.Values{"other": 1}, record)
	})

	t.Run("converts errors to validation errors", func(t *testing.T) {
		validate := validator.Combine(map[string]validator.Check{
			"name":  validator.IsRequired.Field("Name"),
			"email": validator.IsRequired.Field("Email"),
		})

		err := validate(validator.Values{}).Err()
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"email", "name"}, verrs.Fields())
		assert.Equal(t, "validation failed: email: Email is required; name: Name is required", err.Error())
	})
}
