package validator

// Rule is anything Compose accepts. A Validator is configured with the
// composite's configuration; a Check is already configured and runs as-is.
type Rule interface {
	configure(cfg Config) Check
}

func (v Validator) configure(cfg Config) Check {
	if v == nil {
		return nil
	}
	return v(cfg)
}

func (c Check) configure(Config) Check {
	return c
}

// Compose chains rules into a single Validator evaluated left to right.
//
// By default the first failure is returned and the remaining rules are not
// evaluated. With the Multiple option every rule runs and all messages are
// collected, flattening nested multiple results, into one FailAll result.
//
//	name := validator.Compose(
//		validator.IsRequired,
//		validator.IsAlphabetic.With(validator.WithMessage("letters only")),
//	)
//	name.Field("Name").Validate("")                                   // "Name is required"
//	name.With(validator.WithField("Name"), validator.Multiple()).Validate("1") // ["letters only"]
func Compose(rules ...Rule) Validator {
	return func(cfg Config) Check {
		shared := cfg.shared()
		checks := make([]Check, 0, len(rules))
		for _, rule := range rules {
			if rule == nil {
				continue
			}
			if check := rule.configure(shared); check != nil {
				checks = append(checks, check)
			}
		}

		if cfg.IsMultiple() {
			return func(value any, all Values) Result {
				var messages []string
				for _, check := range checks {
					if res := check(value, all); !res.IsValid() {
						messages = append(messages, res.messages...)
					}
				}
				return FailAll(messages...)
			}
		}

		return func(value any, all Values) Result {
			for _, check := range checks {
				if res := check(value, all); !res.IsValid() {
					return res
				}
			}
			return Valid
		}
	}
}
