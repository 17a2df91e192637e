package validator

import (
	"slices"
	"strings"
)

// Errors maps a field path to its failing Result. Passing fields are never
// present, so an all-valid record yields an empty map.
type Errors map[string]Result

func (e Errors) HasErrors() bool {
	return len(e) > 0
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the result for field, Valid when the field passed.
func (e Errors) Get(field string) Result {
	return e[field]
}

// Fields returns the failing field paths in sorted order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

// Err converts the record into ValidationErrors ordered by field path.
// It returns nil when there are no errors.
func (e Errors) Err() error {
	if !e.HasErrors() {
		return nil
	}
	var errs ValidationErrors
	for _, field := range e.Fields() {
		for _, msg := range e[field].messages {
			errs.Add(ValidationError{Field: field, Message: msg})
		}
	}
	return errs
}

// RecordValidator validates a whole record.
type RecordValidator func(values Values) Errors

// CombineOption configures Combine.
type CombineOption func(*combineConfig)

type combineConfig struct {
	serialize func(Values) Values
}

// WithSerializer transforms the record before any check runs, e.g. to
// flatten a domain object into plain Values.
func WithSerializer(fn func(Values) Values) CombineOption {
	return func(c *combineConfig) {
		if fn != nil {
			c.serialize = fn
		}
	}
}

// Combine builds a record validator from configured checks keyed by field.
//
// Every key is validated, absent fields against nil. Keys may address nested
// records with dots ("contact.email") and iterate slices with "[]"
// ("phones[]", "cars[].make"); errors are keyed by the concrete path, such as
// "cars[1].make". Record keys without a check are ignored.
//
//	validate := validator.Combine(map[string]validator.Check{
//		"name": validator.Compose(validator.IsRequired, validator.IsAlphabetic).Field("Name"),
//		"age":  validator.IsNumeric.Field("Age"),
//	})
//	validate(validator.Values{}) // {"name": "Name is required"}
func Combine(checks map[string]Check, opts ...CombineOption) RecordValidator {
	cfg := &combineConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	type entry struct {
		segments []string
		check    Check
	}
	entries := make([]entry, 0, len(checks))
	for key, check := range checks {
		if check == nil {
			continue
		}
		entries = append(entries, entry{segments: strings.Split(key, "."), check: check})
	}

	return func(values Values) Errors {
		if cfg.serialize != nil {
			values = cfg.serialize(values)
		}

		errs := make(Errors)
		for _, e := range entries {
			walk(values, e.segments, "", func(path string, value any) {
				if res := e.check(value, values); !res.IsValid() {
					errs[path] = res
				}
			})
		}
		return errs
	}
}
