package validator

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// text renders a value as a string. ok is false for nil and nil pointers.
func text(value any) (s string, ok bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		if isNilPointer(v) {
			return "", false
		}
		return v.String(), true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		return text(rv.Elem().Interface())
	}
	return fmt.Sprint(value), true
}

// isMissing reports whether a value counts as not provided: nil, a nil
// pointer, or text that is blank after trimming.
func isMissing(value any) bool {
	s, ok := text(value)
	return !ok || strings.TrimSpace(s) == ""
}

// length measures strings in code points and slices, arrays and maps by
// element count. ok is false for values that have no length.
func length(value any) (n int, ok bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case string:
		return utf8.RuneCountInString(v), true
	case []byte:
		return utf8.RuneCount(v), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	case reflect.Pointer:
		if rv.IsNil() {
			return 0, false
		}
		return length(rv.Elem().Interface())
	}

	s, ok := text(value)
	if !ok {
		return 0, false
	}
	return utf8.RuneCountInString(s), true
}

func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
