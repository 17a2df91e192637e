package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	numericRegex      = regexp.MustCompile(`^[0-9]+$`)
)

// IsAlphabetic accepts ASCII letters only.
var IsAlphabetic = matching(alphaRegex.MatchString, func(field string) string {
	return fmt.Sprintf("%s must be alphabetic", field)
})

// IsAlphaNumeric accepts ASCII letters and digits only.
var IsAlphaNumeric = matching(alphanumericRegex.MatchString, func(field string) string {
	return fmt.Sprintf("%s must be alphanumeric", field)
})

// IsNumeric accepts digits only. Numbers are checked through their decimal
// representation, so negative and fractional numbers fail.
var IsNumeric = matching(numericRegex.MatchString, func(field string) string {
	return fmt.Sprintf("%s must be numeric", field)
})

// IsEmail accepts a bare address with a dotted domain, e.g. user@example.com.
var IsEmail = matching(validEmail, func(field string) string {
	return fmt.Sprintf("%s must be a valid email address", field)
})

// IsURL accepts absolute URLs with a scheme and host.
var IsURL = matching(validURL, func(field string) string {
	return fmt.Sprintf("%s must be a valid URL", field)
})

func validEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

func validURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
