package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Comparer reports whether a value equals an allowed entry.
type Comparer func(value, allowed string) bool

// Equal is the default Comparer: exact string equality.
func Equal(value, allowed string) bool {
	return value == allowed
}

// EqualFold compares using full Unicode case folding.
func EqualFold(value, allowed string) bool {
	// Casers are stateful and must not be shared between goroutines.
	return cases.Fold().String(value) == cases.Fold().String(allowed)
}

// IsOneOf fails when a provided value matches none of values.
// Only an absent (nil) value passes unconditionally.
func IsOneOf(values []string, cmp ...Comparer) Validator {
	equal := comparer(cmp)
	list := quoteList(values)
	return New(func(message string) Check {
		return func(value any, _ Values) Result {
			s, ok := text(value)
			if !ok {
				return Valid
			}
			for _, allowed := range values {
				if equal(s, allowed) {
					return Valid
				}
			}
			return Fail(message)
		}
	}, func(field string) string {
		return fmt.Sprintf("%s must be one of %s", field, list)
	})
}

// IsNotOneOf fails when a provided value matches any of values.
func IsNotOneOf(values []string, cmp ...Comparer) Validator {
	equal := comparer(cmp)
	list := quoteList(values)
	return New(func(message string) Check {
		return func(value any, _ Values) Result {
			s, ok := text(value)
			if !ok {
				return Valid
			}
			for _, forbidden := range values {
				if equal(s, forbidden) {
					return Fail(message)
				}
			}
			return Valid
		}
	}, func(field string) string {
		return fmt.Sprintf("%s must not be one of %s", field, list)
	})
}

func comparer(cmp []Comparer) Comparer {
	if len(cmp) > 0 && cmp[0] != nil {
		return cmp[0]
	}
	return Equal
}

// quoteList renders values as a compact JSON array: ["foo","bar"].
func quoteList(values []string) string {
	if values == nil {
		values = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(values); err != nil {
		return "[" + strings.Join(values, ",") + "]"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
