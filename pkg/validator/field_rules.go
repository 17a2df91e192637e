package validator

import (
	"fmt"
	"strings"
)

// MatchesField fails when the value differs from the record field at path
// other, e.g. a password confirmation. Both sides are compared as text, so
// 1234 matches "1234". label names the other field in the default message.
// Missing values pass; compose with IsRequired to demand the confirmation.
// Outside Combine the other field is absent and any provided value fails.
func MatchesField(other, label string) Validator {
	segments := strings.Split(other, ".")
	return New(func(message string) Check {
		return func(value any, all Values) Result {
			if isMissing(value) {
				return Valid
			}
			var otherValue any = all
			for _, seg := range segments {
				otherValue = lookup(otherValue, seg)
			}
			want, ok := text(otherValue)
			got, _ := text(value)
			if !ok || got != want {
				return Fail(message)
			}
			return Valid
		}
	}, func(field string) string {
		return fmt.Sprintf("%s must match %s", field, label)
	})
}
