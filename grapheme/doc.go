// Package grapheme splits text into user-perceived characters.
//
// A grapheme cluster is what a reader sees as one character. It may be made
// of several code points: a letter plus combining accents, a flag built from
// two regional indicators, or an emoji joined with modifiers and ZWJs.
// Segmentation follows Unicode Standard Annex #29.
//
// # Splitting and Counting
//
//	grapheme.Split("👩🏻‍🔬ok")   // ["👩🏻‍🔬", "o", "k"]
//	grapheme.Count("👩🏻‍🔬ok")   // 3
//
// # Folding
//
// Fold prepares text for abbreviation. It splits the text, drops every
// cluster made only of whitespace, and lowercases each remaining cluster
// on its own:
//
//	grapheme.Fold("  Hi There ")  // ["h", "i", "t", "h", "e", "r", "e"]
//
// Lowercasing uses full Unicode case mapping, so multi-rune results such as
// "İ" → "i̇" are kept inside their cluster.
//
// All functions are safe for concurrent use.
package grapheme
