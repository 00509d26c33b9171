package render

import (
	"fmt"
	"strings"
)

// Format selects how results are written.
type Format string

const (
	// FormatText writes one numeronym per line.
	FormatText Format = "text"

	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"

	// FormatYAML writes one YAML document per result.
	FormatYAML Format = "yaml"
)

// Formats returns all supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

// ParseFormat parses a format name. Matching ignores case and surrounding
// whitespace; "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return FormatText, nil
	case "json", "jsonl":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}
