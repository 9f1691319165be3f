// Package singlish converts romanized Sinhala ("Singlish") into Sinhala
// script, both as one-shot batch conversion and per-keystroke through the
// incremental Resolver.
package singlish

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"singlish/internal/registry"
	"singlish/internal/render"
	"singlish/internal/tokenizer"
)

// Converter owns a compiled pattern registry. It is immutable after
// construction and safe to share: each Resolver created from it keeps its
// own pending buffer, the converter itself holds no per-conversion state.
type Converter struct {
	reg *registry.Registry
}

// NewConverter builds a converter over the stock Singlish pattern table.
func NewConverter() (*Converter, error) {
	reg, err := registry.Build(registry.DefaultEntries())
	if err != nil {
		return nil, err
	}
	return &Converter{reg: reg}, nil
}

// Convert transliterates text in one pass. Total: characters with no
// registered mapping pass through verbatim, empty input yields empty output.
func (c *Converter) Convert(text string) string {
	return render.Render(tokenizer.Tokenize(c.reg, text))
}

// Metrics reports a batch conversion together with an approximate count of
// changed positions. The count compares runes position by position and adds
// the length difference; it is a diagnostic, not an alignment diff.
type Metrics struct {
	Text     string
	Original string
	Changed  int
}

// ConvertWithMetrics converts text and reports how much of it changed.
func (c *Converter) ConvertWithMetrics(text string) Metrics {
	out := c.Convert(text)
	in := []rune(text)
	got := []rune(out)
	n := len(in)
	if len(got) < n {
		n = len(got)
	}
	changed := 0
	for i := 0; i < n; i++ {
		if in[i] != got[i] {
			changed++
		}
	}
	if len(got) > n {
		changed += len(got) - n
	} else {
		changed += len(in) - n
	}
	return Metrics{Text: out, Original: text, Changed: changed}
}

// ConvertTrailingWord converts only the substring after the last whitespace
// rune, leaving everything before it untouched.
func (c *Converter) ConvertTrailingWord(text string) string {
	cut := strings.LastIndexFunc(text, unicode.IsSpace)
	if cut < 0 {
		return c.Convert(text)
	}
	_, size := utf8.DecodeRuneInString(text[cut:])
	boundary := cut + size
	return text[:boundary] + c.Convert(text[boundary:])
}
