package validator

import (
	"slices"
	"strings"
)

// Result is the outcome of validating a single value.
//
// The zero value is Valid. A failing Result carries either one message
// (single-error mode) or an ordered list of messages produced by a composite
// validator in multiple mode. Validity is never encoded as an empty message.
type Result struct {
	messages []string
	multiple bool
}

// Valid is the result of a value that passed validation.
var Valid Result

// Fail returns a failing result carrying a single message.
func Fail(message string) Result {
	return Result{messages: []string{message}}
}

// FailAll returns a failing result carrying every message in order.
// With no messages it returns Valid.
func FailAll(messages ...string) Result {
	if len(messages) == 0 {
		return Valid
	}
	return Result{messages: slices.Clone(messages), multiple: true}
}

func (r Result) IsValid() bool {
	return len(r.messages) == 0
}

// Message returns the first message, or an empty string for a valid result.
func (r Result) Message() string {
	if r.IsValid() {
		return ""
	}
	return r.messages[0]
}

// Messages returns a copy of all messages in evaluation order.
func (r Result) Messages() []string {
	return slices.Clone(r.messages)
}

// IsMultiple reports whether the result was collected in multiple mode.
func (r Result) IsMultiple() bool {
	return r.multiple
}

func (r Result) String() string {
	if r.IsValid() {
		return ""
	}
	return strings.Join(r.messages, "; ")
}

// Err converts the result into an error attributed to field.
// It returns nil for a valid result.
func (r Result) Err(field string) error {
	if r.IsValid() {
		return nil
	}
	errs := make(ValidationErrors, 0, len(r.messages))
	for _, msg := range r.messages {
		errs.Add(ValidationError{Field: field, Message: msg})
	}
	return errs
}
