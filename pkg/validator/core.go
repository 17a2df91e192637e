package validator

// Values is a record of field values keyed by field name. Nested records
// (map[string]any or Values) and slices are allowed.
type Values map[string]any

// Check validates a single value. all is the record the value belongs to
// when the check runs inside Combine, and nil otherwise.
type Check func(value any, all Values) Result

// Validate runs the check on a standalone value.
func (c Check) Validate(value any) Result {
	if c == nil {
		return Valid
	}
	return c(value, nil)
}

// Definition builds a Check that reports message for every value it
// considers invalid.
type Definition func(message string) Check

// MessageFunc produces a default message for a field name.
type MessageFunc func(field string) string

// Literal returns a MessageFunc that ignores the field name.
func Literal(message string) MessageFunc {
	return func(string) string { return message }
}

// Validator is a configurable validator: applying a Config yields a Check.
type Validator func(cfg Config) Check

// New builds a Validator from a definition and a default message.
//
// The configuration is resolved on every application: a message override is
// used verbatim, otherwise defaultMessage is called with the field name.
//
//	isEven := validator.New(func(msg string) validator.Check {
//		return func(value any, _ validator.Values) validator.Result {
//			if n, ok := value.(int); ok && n%2 != 0 {
//				return validator.Fail(msg)
//			}
//			return validator.Valid
//		}
//	}, func(field string) string { return field + " must be even" })
//
//	isEven.Field("Count").Validate(3) // "Count must be even"
func New(define Definition, defaultMessage MessageFunc) Validator {
	return func(cfg Config) Check {
		if define == nil {
			return nil
		}
		return define(cfg.resolve(defaultMessage))
	}
}

// Field applies a plain field-name configuration.
func (v Validator) Field(name string) Check {
	return v(Name(name))
}

// With applies a structured configuration.
func (v Validator) With(opts ...Option) Check {
	return v(Options(opts...))
}

// Validate configures the validator and checks value in one step.
func (v Validator) Validate(cfg Config, value any) Result {
	return v(cfg).Validate(value)
}
