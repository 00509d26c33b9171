package numeronym_test

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/numeronym/grapheme"
	"github.com/randalmurphal/numeronym/numeronym"
)

func TestGenerate_WellKnown(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "localization", expected: "l10n"},
		{input: "internationalizatoin", expected: "i18n"},
		{input: "accessibility", expected: "a11y"},
		{input: "observability", expected: "o11y"},
		{input: "Andreessen Horowitz", expected: "a16z"},
		{input: "kubernetes", expected: "k8s"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, numeronym.Generate(tt.input))
		})
	}
}

func TestGenerate_Whitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "none", input: "shorten"},
		{name: "leading", input: "   shorten"},
		{name: "trailing", input: "shorten    "},
		{name: "both", input: " shorten "},
		{name: "uneven", input: "    shorten "},
		{name: "tabs and newlines", input: "\t\nshorten\r\n"},
		{name: "unicode spaces", input: "　shorten  "},
		{name: "internal", input: "sho rt\ten"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "s5n", numeronym.Generate(tt.input))
		})
	}
}

func TestGenerate_Case(t *testing.T) {
	for _, input := range []string{"tomato", "Tomato", "TOMATO", "TomatO", "tOmAtO"} {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, "t4o", numeronym.Generate(input))
		})
	}
}

func TestGenerate_NonASCII(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "hungarian double acute", input: "Győző", expected: "g3ő"},
		{name: "precomposed capital", input: "Álmos", expected: "á3s"},
		{name: "decomposed capital", input: "A\u0301lmos", expected: "a\u03013s"},
		{name: "greek", input: "ΑΛΦΑΒΗΤΟ", expected: "α6ο"},
		{name: "cyrillic", input: "Привет", expected: "п4т"},
		{name: "hebrew", input: "שלום", expected: "ש2ם"},
		{name: "cjk", input: "漢字文化", expected: "漢2化"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, numeronym.Generate(tt.input))
		})
	}
}

func TestGenerate_Emoji(t *testing.T) {
	const (
		joy       = "\U0001F602"
		pineapple = "\U0001F34D"
		scientist = "\U0001F469\U0001F3FB\u200d\U0001F52C"
		okHand    = "\U0001F44C\U0001F3FE"
		family    = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"
		flagDE    = "\U0001F1E9\U0001F1EA"
	)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "emoji in the middle", input: "a" + joy + "c", expected: "a1c"},
		{name: "emoji at the end", input: "a" + joy + joy, expected: "a1" + joy},
		{name: "only emoji", input: joy + joy + joy, expected: joy + "1" + joy},
		{name: "modifier and zwj sequences", input: pineapple + scientist + okHand, expected: pineapple + "1" + okHand},
		{name: "family first", input: family + "abc", expected: family + "2c"},
		{name: "flag last", input: "go" + flagDE, expected: "g1" + flagDE},
		{name: "two sequences are not abbreviated", input: scientist + " " + family, expected: scientist + family},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, numeronym.Generate(tt.input))
		})
	}
}

func TestGenerate_ShortInputs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "only whitespace", input: " \t\n ", expected: ""},
		{name: "one", input: "a", expected: "a"},
		{name: "one upper", input: "Q", expected: "q"},
		{name: "one padded", input: "  Z  ", expected: "z"},
		{name: "two", input: "ab", expected: "ab"},
		{name: "two upper", input: "AB", expected: "ab"},
		{name: "two split by space", input: "A b", expected: "ab"},
		{name: "three", input: "abc", expected: "a1c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, numeronym.Generate(tt.input))
		})
	}
}

func TestGenerate_InvalidUTF8(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		suffix string
	}{
		{name: "lone invalid byte", input: "\xff", length: 1},
		{name: "invalid bytes before ascii", input: "\xff\xfeabc", length: 5, suffix: "3c"},
		{name: "truncated multibyte sequence", input: "AB\xe2\x82", length: 4},
		{name: "invalid byte between spaces", input: " \x80 ", length: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r numeronym.Result
			require.NotPanics(t, func() { r = numeronym.Analyze(tt.input) })
			assert.Equal(t, tt.length, r.Length)
			assert.Equal(t, r.Output, numeronym.Generate(tt.input))
			assert.True(t, strings.HasSuffix(r.Output, tt.suffix), "output %q", r.Output)
			if tt.length > 2 {
				assert.True(t, strings.HasPrefix(r.Output, r.First))
				assert.Equal(t, r.First+strconv.Itoa(tt.length-2)+r.Last, r.Output)
			}
		})
	}
}

func TestGenerate_MatchesFoldedLength(t *testing.T) {
	inputs := []string{
		"supercalifragilisticexpialidocious",
		"The quick brown fox jumps over the lazy dog",
		strings.Repeat("ab ", 500),
		strings.Repeat("\U0001F602", 120),
	}

	for _, input := range inputs {
		folded := grapheme.Fold(input)
		require.Greater(t, len(folded), 2)

		want := folded[0] + strconv.Itoa(len(folded)-2) + folded[len(folded)-1]
		assert.Equal(t, want, numeronym.Generate(input))
	}
}

func TestAnalyze(t *testing.T) {
	t.Run("abbreviated", func(t *testing.T) {
		r := numeronym.Analyze("  Accessibility ")
		assert.Equal(t, numeronym.Result{
			Input:       "  Accessibility ",
			Output:      "a11y",
			First:       "a",
			Last:        "y",
			Elided:      11,
			Length:      13,
			Abbreviated: true,
		}, r)
		assert.Equal(t, "a11y", r.String())
	})

	t.Run("too short", func(t *testing.T) {
		r := numeronym.Analyze("Ok")
		assert.Equal(t, numeronym.Result{
			Input:  "Ok",
			Output: "ok",
			First:  "o",
			Last:   "k",
			Length: 2,
		}, r)
	})

	t.Run("empty", func(t *testing.T) {
		r := numeronym.Analyze("")
		assert.Equal(t, numeronym.Result{}, r)
		assert.False(t, r.Abbreviated)
	})
}

func TestGenerateAll(t *testing.T) {
	assert.Equal(t,
		[]string{"l10n", "", "ab", "t4o"},
		numeronym.GenerateAll([]string{"localization", "", "AB", "TOMATO"}),
	)
	assert.Empty(t, numeronym.GenerateAll(nil))
}

func TestGenerate_ConcurrentCalls(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = numeronym.Generate("Andreessen Horowitz")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, "a16z", got)
	}
}
