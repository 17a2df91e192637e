package validator

import "fmt"

// IsRequired fails for nil, nil pointers and blank text.
var IsRequired = New(func(message string) Check {
	return func(value any, _ Values) Result {
		if isMissing(value) {
			return Fail(message)
		}
		return Valid
	}
}, func(field string) string {
	return fmt.Sprintf("%s is required", field)
})

// IsRequiredIf behaves like IsRequired when condition holds for the record
// being validated. Outside Combine the condition receives nil.
func IsRequiredIf(condition func(all Values) bool) Validator {
	return New(func(message string) Check {
		return func(value any, all Values) Result {
			if condition != nil && condition(all) && isMissing(value) {
				return Fail(message)
			}
			return Valid
		}
	}, func(field string) string {
		return fmt.Sprintf("%s is required", field)
	})
}

// HasLengthBetween fails when the length is outside [min, max]. Absent and
// empty values pass.
func HasLengthBetween(min, max int) Validator {
	return New(func(message string) Check {
		return func(value any, _ Values) Result {
			if n, ok := measure(value); ok && (n < min || n > max) {
				return Fail(message)
			}
			return Valid
		}
	}, func(field string) string {
		return fmt.Sprintf("%s must be between %d and %d characters long", field, min, max)
	})
}

// HasLengthGreaterThan fails unless the length exceeds min.
func HasLengthGreaterThan(min int) Validator {
	return New(func(message string) Check {
		return func(value any, _ Values) Result {
			if n, ok := measure(value); ok && n <= min {
				return Fail(message)
			}
			return Valid
		}
	}, func(field string) string {
		return fmt.Sprintf("%s must be longer than %d characters", field, min)
	})
}

// HasLengthLessThan fails when the length exceeds max.
func HasLengthLessThan(max int) Validator {
	return New(func(message string) Check {
		return func(value any, _ Values) Result {
			if n, ok := measure(value); ok && n > max {
				return Fail(message)
			}
			return Valid
		}
	}, func(field string) string {
		return fmt.Sprintf("%s cannot be longer than %d characters", field, max)
	})
}

// measure returns the length of values that length rules apply to.
// Absent values and empty text are skipped.
func measure(value any) (int, bool) {
	n, ok := length(value)
	if !ok {
		return 0, false
	}
	if s, isText := text(value); isText && s == "" {
		return 0, false
	}
	return n, true
}
