// Package numeronym abbreviates words and phrases into numeronyms.
//
// A numeronym keeps the first and last character of a word and replaces
// everything in between with the number of characters removed:
//
//	numeronym.Generate("localization")         // "l10n"
//	numeronym.Generate("Andreessen Horowitz")  // "a16z"
//
// # Rules
//
// Characters are grapheme clusters, so accented letters and emoji
// sequences count as one character and are never split. Whitespace is
// removed wherever it occurs, and every character is lowercased. Input
// with fewer than three characters left after that is returned as is:
//
//	numeronym.Generate(" AB ")  // "ab"
//
// # Structured Results
//
// Analyze returns the pieces of the abbreviation alongside the output:
//
//	r := numeronym.Analyze("accessibility")
//	r.First, r.Elided, r.Last  // "a", 11, "y"
//	r.String()                 // "a11y"
//
// Generate and Analyze never fail and hold no state; they are safe for
// concurrent use.
package numeronym
