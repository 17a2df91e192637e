package messages

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	switch {
	case strings.EqualFold(ext, "yaml"), strings.EqualFold(ext, "yml"):
		return FormatYAML, nil
	case strings.EqualFold(ext, "json"):
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Parse decodes a flat rule-to-template document.
//
//	required: "%{field} is required"
//	length_less_than: "%{field} is limited to %{max} characters"
func Parse(content []byte, format Format) (*Catalog, error) {
	var data map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, errors.Join(ErrFailedToParseYAML, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(content, &data); err != nil {
			return nil, errors.Join(ErrFailedToParseJSON, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if len(data) == 0 {
		return nil, ErrEmptyCatalog
	}

	templates := make(map[string]string, len(data))
	for rule, val := range data {
		tmpl, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("%w: rule %q: expected string, got %T", ErrInvalidTemplate, rule, val)
		}
		templates[rule] = tmpl
	}
	return &Catalog{templates: templates}, nil
}

// LoadFile reads a catalog file and merges it over the default catalog.
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	loaded, err := Parse(content, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Default().Merge(loaded), nil
}
