package validator

// ConfigKind tells how a Config was supplied.
type ConfigKind uint8

const (
	// KindOptions is a structured configuration built with Options.
	KindOptions ConfigKind = iota
	// KindName is a plain field name built with Name.
	KindName
)

// Config is the first argument of every Validator: either a plain field
// name or a set of options. It is immutable once built.
type Config struct {
	kind       ConfigKind
	field      string
	hasField   bool
	message    string
	hasMessage bool
	multiple   bool
}

// Option configures an options-kind Config.
type Option func(*Config)

// Name returns a configuration holding only a field name, used to
// interpolate default messages.
func Name(field string) Config {
	return Config{kind: KindName, field: field, hasField: true}
}

// Options returns a structured configuration. Unset options have no effect.
func Options(opts ...Option) Config {
	cfg := Config{kind: KindOptions}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithField sets the field name used in default messages.
func WithField(field string) Option {
	return func(c *Config) {
		c.field = field
		c.hasField = true
	}
}

// WithMessage overrides the default message. The message is used verbatim.
func WithMessage(message string) Option {
	return func(c *Config) {
		c.message = message
		c.hasMessage = true
	}
}

// Multiple makes a composite validator collect every failure instead of
// stopping at the first one. It has no effect on leaf validators.
func Multiple() Option {
	return func(c *Config) { c.multiple = true }
}

func (c Config) Kind() ConfigKind {
	return c.kind
}

// Field returns the configured field name and whether one was set.
func (c Config) Field() (string, bool) {
	return c.field, c.hasField
}

// Message returns the message override and whether one was set.
func (c Config) Message() (string, bool) {
	if c.kind == KindName {
		return "", false
	}
	return c.message, c.hasMessage
}

func (c Config) IsMultiple() bool {
	return c.kind == KindOptions && c.multiple
}

// resolve computes the message a leaf validator reports on failure.
// A missing field name degrades to an empty field segment.
func (c Config) resolve(defaultMessage MessageFunc) string {
	if msg, ok := c.Message(); ok {
		return msg
	}
	if defaultMessage == nil {
		return ""
	}
	return defaultMessage(c.field)
}

// shared is the configuration passed down to composed validators.
func (c Config) shared() Config {
	c.multiple = false
	return c
}
