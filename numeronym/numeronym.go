package numeronym

import (
	"strconv"
	"strings"

	"github.com/randalmurphal/numeronym/grapheme"
)

// MinAbbreviated is the smallest character count that gets abbreviated.
// Shorter input has nothing to elide.
const MinAbbreviated = 3

// Result describes one abbreviation.
type Result struct {
	// Input is the text as given.
	Input string `json:"input" yaml:"input" jsonschema:"description=Text as given"`

	// Output is the numeronym, or the folded input when it is too short.
	Output string `json:"output" yaml:"output" jsonschema:"description=Numeronym or folded input"`

	// First is the first remaining character. Empty for empty input.
	First string `json:"first" yaml:"first" jsonschema:"description=First remaining grapheme"`

	// Last is the last remaining character. Empty for empty input.
	Last string `json:"last" yaml:"last" jsonschema:"description=Last remaining grapheme"`

	// Elided is the number of characters replaced by the count.
	// Zero when Abbreviated is false.
	Elided int `json:"elided" yaml:"elided" jsonschema:"minimum=0"`

	// Length is the character count after whitespace removal.
	Length int `json:"length" yaml:"length" jsonschema:"minimum=0"`

	// Abbreviated reports whether Output is a numeronym.
	Abbreviated bool `json:"abbreviated" yaml:"abbreviated"`
}

// String returns the output.
func (r Result) String() string {
	return r.Output
}

// Generate returns the numeronym for input.
func Generate(input string) string {
	return Analyze(input).Output
}

// GenerateAll returns the numeronym for each input, in order.
func GenerateAll(inputs []string) []string {
	out := make([]string, len(inputs))
	for i, in := range inputs {
		out[i] = Generate(in)
	}
	return out
}

// Analyze abbreviates input and reports the parts of the result.
func Analyze(input string) Result {
	clusters := grapheme.Fold(input)
	n := len(clusters)

	r := Result{Input: input, Length: n}
	if n > 0 {
		r.First = clusters[0]
		r.Last = clusters[n-1]
	}

	if n < MinAbbreviated {
		r.Output = strings.Join(clusters, "")
		return r
	}

	r.Elided = n - 2
	r.Abbreviated = true
	r.Output = r.First + strconv.Itoa(r.Elided) + r.Last
	return r
}
