package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Split returns the grapheme clusters of text in order.
// Returns nil for empty text.
func Split(text string) []string {
	if text == "" {
		return nil
	}

	var out []string
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, cluster)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// IsSpace reports whether cluster is non-empty and made only of
// Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Lower maps cluster to its lowercase form.
// Clusters without a lowercase mapping are returned unchanged.
func Lower(cluster string) string {
	return newLowerCaser().String(cluster)
}

// Fold splits text into grapheme clusters, drops the clusters that are
// entirely whitespace, and lowercases each remaining cluster.
// Returns nil when nothing remains.
func Fold(text string) []string {
	if text == "" {
		return nil
	}

	// A Caser keeps state between calls, so each Fold gets its own.
	lower := newLowerCaser()

	var out []string
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		if IsSpace(cluster) {
			continue
		}
		out = append(out, lower.String(cluster))
	}
	return out
}

func newLowerCaser() cases.Caser {
	return cases.Lower(language.Und)
}
