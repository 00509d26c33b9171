package render

import "errors"

// Sentinel errors for render operations.
var (
	// ErrUnknownFormat is returned when a format name is not recognized.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrClosed is returned when encoding to a closed encoder.
	ErrClosed = errors.New("encoder is closed")
)
