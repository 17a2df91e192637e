package messages

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToReadFile  = errors.New("failed to read catalog file")
	ErrEmptyCatalog      = errors.New("catalog has no templates")
	ErrInvalidTemplate   = errors.New("invalid message template")
)
