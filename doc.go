// Package numeronym is the root of a small toolkit for building numeronyms:
// abbreviations such as "l10n" for "localization" that keep the first and
// last character and count the ones in between.
//
// Each subpackage can be used independently:
//
//   - numeronym: the abbreviation itself (Generate, Analyze)
//   - grapheme: Unicode grapheme segmentation, whitespace filtering, lowercasing
//   - render: text, JSON Lines, and YAML output plus a JSON Schema
//   - linereader: line input from files and streams, with tail -f style following
//   - config: settings for the numeronym command
//
// # Quick Start
//
//	import "github.com/randalmurphal/numeronym/numeronym"
//	numeronym.Generate("accessibility")  // "a11y"
//
// The command in cmd/numeronym wraps the same function:
//
//	$ numeronym "Andreessen Horowitz"
//	a16z
package numeronym
