// Package tokenizer turns romanized text into phoneme spans by greedy
// longest-match against the pattern registry.
package tokenizer

import "singlish/internal/registry"

// Span is one tokenized slice of the input. Spans are contiguous,
// non-overlapping, and their lengths sum to the input length in runes.
type Span struct {
	Start       int // rune offset into the input
	Length      int // rune count consumed
	Text        string
	Phoneme     *registry.Phoneme // nil for passthrough spans
	Passthrough bool
}

// Tokenize scans text left to right, taking the longest registered match at
// each position and falling back to a one-rune passthrough span. Total: every
// input rune lands in exactly one span.
func Tokenize(reg *registry.Registry, text string) []Span {
	spans, _ := scan(reg, []rune(text), false)
	return spans
}

// ScanPending tokenizes a resolver buffer. Unlike Tokenize it stops when the
// untokenized remainder is a viable (but incomplete) prefix of a registered
// pattern, since a future keystroke may still complete it. It returns the
// spans plus the rune offset where the remainder begins (len(runes) when the
// buffer tokenized fully).
func ScanPending(reg *registry.Registry, runes []rune) ([]Span, int) {
	return scan(reg, runes, true)
}

func scan(reg *registry.Registry, runes []rune, stopOnViable bool) ([]Span, int) {
	spans := make([]Span, 0, len(runes))
	pos := 0
	for pos < len(runes) {
		if l, p := reg.LongestMatchAt(runes, pos); l > 0 {
			spans = append(spans, Span{
				Start:   pos,
				Length:  l,
				Text:    string(runes[pos : pos+l]),
				Phoneme: p,
			})
			pos += l
			continue
		}
		if stopOnViable && reg.IsViablePrefix(string(runes[pos:])) {
			return spans, pos
		}
		spans = append(spans, Span{
			Start:       pos,
			Length:      1,
			Text:        string(runes[pos]),
			Passthrough: true,
		})
		pos++
	}
	return spans, len(runes)
}
