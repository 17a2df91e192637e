package validator

import (
	"fmt"
	"regexp"
)

// MatchesPattern fails when a provided value does not match re.
// Absent and blank values pass; combine with IsRequired to demand a value.
func MatchesPattern(re *regexp.Regexp) Validator {
	return matching(re.MatchString, func(field string) string {
		return fmt.Sprintf("%s must match pattern %s", field, re)
	})
}

// matching builds a format validator that only inspects provided values.
func matching(ok func(string) bool, defaultMessage MessageFunc) Validator {
	return New(func(message string) Check {
		return func(value any, _ Values) Result {
			if isMissing(value) {
				return Valid
			}
			s, _ := text(value)
			if !ok(s) {
				return Fail(message)
			}
			return Valid
		}
	}, defaultMessage)
}
