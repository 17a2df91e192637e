package form

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

// ValidationError represents field validation errors.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationError url.Values

// NewValidationError converts a record of failing fields. It returns nil
// when errs is empty.
func NewValidationError(errs validator.Errors) ValidationError {
	if !errs.HasErrors() {
		return nil
	}
	ve := make(ValidationError, len(errs))
	for field, res := range errs {
		ve[field] = res.Messages()
	}
	return ve
}

// Error returns a summary with the first message of each field, sorted by field.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Is lets errors.Is match validator.ErrValidationFailed.
func (e ValidationError) Is(target error) bool {
	return target == validator.ErrValidationFailed
}

// Get returns the first error message for a field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field has any errors.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
