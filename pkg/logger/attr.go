package logger

import (
	"log/slog"
	"slices"
	"strings"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Fields groups per-field messages under the key "fields", sorted by field.
// An empty map produces an empty Attr.
func Fields(fields map[string][]string) slog.Attr {
	if len(fields) == 0 {
		return slog.Attr{}
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)

	as := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		as = append(as, slog.String(name, strings.Join(fields[name], "; ")))
	}
	return slog.Attr{Key: "fields", Value: slog.GroupValue(as...)}
}

// RequestID records the request identifier under the key "request_id".
// Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
