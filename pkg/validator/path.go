package validator

import (
	"reflect"
	"strconv"
	"strings"
)

// walk resolves path segments against current and calls visit for every
// value the path addresses. A "name[]" segment fans out over the elements of
// a slice; a missing or non-slice value there addresses nothing.
func walk(current any, segments []string, prefix string, visit func(path string, value any)) {
	if len(segments) == 0 {
		visit(prefix, current)
		return
	}

	name, each := strings.CutSuffix(segments[0], "[]")
	value, path := current, prefix
	if name != "" || !each {
		value = lookup(current, name)
		path = joinPath(prefix, name)
	}

	if !each {
		walk(value, segments[1:], path, visit)
		return
	}

	items, ok := elements(value)
	if !ok {
		return
	}
	for i, item := range items {
		walk(item, segments[1:], path+"["+strconv.Itoa(i)+"]", visit)
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// lookup returns the value stored under key in a string-keyed map, or nil.
func lookup(record any, key string) any {
	switch m := record.(type) {
	case nil:
		return nil
	case Values:
		return m[key]
	case map[string]any:
		return m[key]
	case map[string]string:
		if v, ok := m[key]; ok {
			return v
		}
		return nil
	}

	rv := reflect.ValueOf(record)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}

// elements returns the items of a slice or array value. Byte slices are
// treated as scalar text.
func elements(value any) ([]any, bool) {
	switch v := value.(type) {
	case nil, []byte:
		return nil, false
	case []any:
		return v, true
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}
