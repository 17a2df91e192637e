// Package validator provides combinators for building value validators and
// assembling them into record validators.
//
// Everything is built from three functions:
//
//   - New turns a message-aware predicate into a configurable Validator.
//   - Compose chains Validators left to right, stopping at the first failure
//     or, with the Multiple option, collecting every failure.
//   - Combine applies configured checks to the fields of a record and returns
//     the failing fields only.
//
// Failures are data, not errors: a Check returns a Result whose zero value,
// Valid, means the value passed. Errors.Err and Result.Err bridge to the error
// interface through ValidationErrors when host code needs one.
//
// # Configuration
//
// A Validator is applied to a Config before it sees a value. Name("Email")
// sets the field name interpolated into default messages; Options accepts
// WithField, WithMessage (used verbatim) and Multiple (composites only).
//
//	IsRequired.Field("Name").Validate(nil)                        // "Name is required"
//	IsRequired.With(WithMessage("Tell us your name")).Validate("") // "Tell us your name"
//	IsRequired.Validate(Name("Name"), "Ada")                      // Valid
//
// # Usage
//
//	validate := validator.Combine(map[string]validator.Check{
//		"name":  validator.Compose(validator.IsRequired, validator.IsAlphabetic).Field("Name"),
//		"email": validator.Compose(validator.IsRequired, validator.IsEmail).Field("Email"),
//		"tags[]": validator.IsOneOf([]string{"go", "rust"}, validator.EqualFold).Field("Tag"),
//		"confirm": validator.MatchesField("password", "Password").Field("Confirmation"),
//	})
//
//	errs := validate(validator.Values{"name": "Ada", "tags": []string{"Go", "zig"}})
//	// errs["email"].Message() == "Email is required"
//	// errs["tags[1]"].Message() == `Tag must be one of ["go","rust"]`
//
// # Missing values
//
// Fields absent from a record are validated against nil. IsRequired and
// IsRequiredIf treat nil and blank text as missing; every other built-in
// passes a missing value so that format rules compose with IsRequired.
//
// Validators hold no mutable state and are safe for concurrent use.
package validator
