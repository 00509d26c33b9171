package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/numeronym/numeronym"
)

// Encoder writes results to a stream in one format.
// An Encoder is not safe for concurrent use.
type Encoder struct {
	w      io.Writer
	format Format
	json   *json.Encoder
	yaml   *yaml.Encoder
	closed bool
}

// NewEncoder creates an encoder writing to w.
// Unknown formats fall back to FormatText.
func NewEncoder(w io.Writer, format Format) *Encoder {
	e := &Encoder{w: w, format: format}
	switch format {
	case FormatJSON:
		e.json = json.NewEncoder(w)
		e.json.SetEscapeHTML(false)
	case FormatYAML:
		e.yaml = yaml.NewEncoder(w)
		e.yaml.SetIndent(2)
	default:
		e.format = FormatText
	}
	return e
}

// Format returns the encoder's format.
func (e *Encoder) Format() Format {
	return e.format
}

// Encode writes one result.
func (e *Encoder) Encode(r numeronym.Result) error {
	if e.closed {
		return ErrClosed
	}

	switch e.format {
	case FormatJSON:
		if err := e.json.Encode(r); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		if err := e.yaml.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		if _, err := fmt.Fprintln(e.w, r.Output); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
	}
	return nil
}

// Close flushes any buffered output. It does not close the underlying writer.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if e.yaml != nil {
		if err := e.yaml.Close(); err != nil {
			return fmt.Errorf("close yaml: %w", err)
		}
	}
	return nil
}
