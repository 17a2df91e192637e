package messages

import (
	"fmt"
	"maps"
	"regexp"

	"github.com/dmitrymomot/validkit/pkg/validator"
)

// Rule names of the built-in validators.
const (
	Required          = "required"
	LengthBetween     = "length_between"
	LengthGreaterThan = "length_greater_than"
	LengthLessThan    = "length_less_than"
	Alphabetic        = "alphabetic"
	AlphaNumeric      = "alphanumeric"
	Numeric           = "numeric"
	OneOf             = "one_of"
	NotOneOf          = "not_one_of"
	Pattern           = "pattern"
	MatchesField      = "matches_field"
	Email             = "email"
	URL               = "url"
	UUID              = "uuid"
)

// Fallback is rendered for rules missing from a catalog.
const Fallback = "%{field} is invalid"

var defaults = map[string]string{
	Required:          "%{field} is required",
	LengthBetween:     "%{field} must be between %{min} and %{max} characters long",
	LengthGreaterThan: "%{field} must be longer than %{min} characters",
	LengthLessThan:    "%{field} cannot be longer than %{max} characters",
	Alphabetic:        "%{field} must be alphabetic",
	AlphaNumeric:      "%{field} must be alphanumeric",
	Numeric:           "%{field} must be numeric",
	OneOf:             "%{field} must be one of %{values}",
	NotOneOf:          "%{field} must not be one of %{values}",
	Pattern:           "%{field} must match pattern %{pattern}",
	MatchesField:      "%{field} must match %{other}",
	Email:             "%{field} must be a valid email address",
	URL:               "%{field} must be a valid URL",
	UUID:              "%{field} must be a valid UUID",
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Params are named values substituted into %{name} placeholders.
type Params map[string]any

// Catalog maps rule names to message templates. It is immutable and safe
// for concurrent use.
type Catalog struct {
	templates map[string]string
}

// Default returns the catalog of built-in English messages.
func Default() *Catalog {
	return &Catalog{templates: maps.Clone(defaults)}
}

// New returns a catalog holding only the given templates.
func New(templates map[string]string) *Catalog {
	return &Catalog{templates: maps.Clone(templates)}
}

// Merge returns a new catalog where templates from other replace ours.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := maps.Clone(c.templates)
	if merged == nil {
		merged = make(map[string]string)
	}
	if other != nil {
		maps.Copy(merged, other.templates)
	}
	return &Catalog{templates: merged}
}

// Has reports whether the catalog defines rule.
func (c *Catalog) Has(rule string) bool {
	_, ok := c.templates[rule]
	return ok
}

// Render interpolates field and params into the template for rule.
// Placeholders without a value are kept as-is.
func (c *Catalog) Render(rule, field string, params Params) string {
	tmpl, ok := c.templates[rule]
	if !ok {
		tmpl = Fallback
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if name == "field" {
			return field
		}
		if val, ok := params[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// MessageFunc returns a default-message builder for validator.New.
func (c *Catalog) MessageFunc(rule string, params Params) validator.MessageFunc {
	return func(field string) string {
		return c.Render(rule, field, params)
	}
}

// Config returns a validator configuration carrying field and the rendered
// message as an override.
//
// The override reaches every validator inside a composite, so a composite
// configured this way reports the one rule's text for any failure. Configure
// the leaves individually and compose the resulting checks instead:
//
//	name := validator.Compose(
//		validator.IsRequired(catalog.Config(messages.Required, "Name", nil)),
//		validator.IsAlphabetic(catalog.Config(messages.Alphabetic, "Name", nil)),
//	).Field("Name")
//
//	check := validator.HasLengthLessThan(20)(
//		catalog.Config(messages.LengthLessThan, "Name", messages.Params{"max": 20}),
//	)
func (c *Catalog) Config(rule, field string, params Params) validator.Config {
	return validator.Options(
		validator.WithField(field),
		validator.WithMessage(c.Render(rule, field, params)),
	)
}
