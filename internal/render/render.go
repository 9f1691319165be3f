// Package render is the context-sensitive glyph state machine: it consumes a
// phoneme span sequence and emits Sinhala text, deciding inherent-vowel
// elision, vowel-sign attachment, virama insertion and conjunct joining from
// up to two tokens of lookahead.
package render

import (
	"strings"

	"singlish/internal/registry"
	"singlish/internal/tokenizer"
)

const (
	// Virama (al-lakuna) suppresses a consonant's inherent vowel.
	Virama = "\u0dca"
	// ZWJ requests the joined conjunct form of virama + consonant.
	ZWJ = "\u200d"
)

// Render converts a token sequence to Sinhala text. It is total over any
// sequence the tokenizer can produce and a pure function of its input.
func Render(spans []tokenizer.Span) string {
	var b strings.Builder
	i := 0
	for i < len(spans) {
		s := spans[i]
		if s.Passthrough {
			b.WriteString(s.Text)
			i++
			continue
		}
		p := s.Phoneme
		switch p.Category {
		case registry.Special:
			b.WriteString(p.Glyph)
			i++

		case registry.Vowel:
			// Any vowel reached here is standalone: consonant rules
			// consume the vowel that follows them.
			b.WriteString(p.Glyph)
			i++

		case registry.NasalizedConsonant:
			b.WriteString(p.Glyph)
			if p.OwnVowel {
				i++
				continue
			}
			i += consonantTail(&b, spans, i)

		case registry.Consonant:
			if p.SplitFirst != nil {
				// The ng digraph: two independent consonants, never
				// the single nasalized glyph.
				b.WriteString(p.SplitFirst.Glyph)
				b.WriteString(Virama)
				b.WriteString(p.SplitSecond.Glyph)
				i += consonantTail(&b, spans, i)
				continue
			}
			if next := phonemeAt(spans, i+1); next != nil && next.Join != registry.JoinNone {
				third := phonemeAt(spans, i+2)
				if next.Join == registry.JoinRakar && third != nil &&
					third.Category == registry.Vowel && third.RSign != "" {
					// Dedicated consonant+r+u/uu sign: one composed
					// glyph, three tokens.
					b.WriteString(p.Glyph)
					b.WriteString(third.RSign)
					i += 3
					continue
				}
				b.WriteString(p.Glyph)
				b.WriteString(Virama)
				b.WriteString(ZWJ)
				b.WriteString(next.Glyph)
				i++ // base consumed; the joined consonant takes the tail rules
				i += consonantTail(&b, spans, i)
				continue
			}
			b.WriteString(p.Glyph)
			i += consonantTail(&b, spans, i)
		}
	}
	return b.String()
}

// consonantTail applies the vowel/elision/virama rules for the consonant at
// spans[i], whose base glyph is already written. Returns the number of tokens
// consumed including the consonant itself.
func consonantTail(b *strings.Builder, spans []tokenizer.Span, i int) int {
	next := phonemeAt(spans, i+1)
	if next == nil {
		// End of stream or a passthrough character: the inherent vowel
		// is suppressed.
		b.WriteString(Virama)
		return 1
	}
	switch next.Category {
	case registry.Vowel:
		if !next.Inherent {
			b.WriteString(next.Sign)
		}
		return 2
	case registry.Special:
		// Bare consonant; the mark renders on its own next.
		return 1
	default:
		b.WriteString(Virama)
		return 1
	}
}

func phonemeAt(spans []tokenizer.Span, i int) *registry.Phoneme {
	if i < 0 || i >= len(spans) || spans[i].Passthrough {
		return nil
	}
	return spans[i].Phoneme
}
