package singlish

import (
	"singlish/internal/registry"
	"singlish/internal/render"
	"singlish/internal/tokenizer"
)

// ResolveResult is the outcome of feeding one character to a Resolver.
// Commit is rendered output that is now final; Pending is the romanized tail
// whose rendering a future keystroke could still change.
type ResolveResult struct {
	Commit  string
	Pending string
}

// Resolver is the per-keystroke engine. It owns the only mutable state in
// the package: the buffer of typed characters not yet committed. One
// resolver serves one input session; drive it from a single goroutine.
type Resolver struct {
	conv   *Converter
	buffer []rune
}

// NewResolver creates an empty resolver sharing the converter's registry.
func (c *Converter) NewResolver() *Resolver {
	return &Resolver{conv: c}
}

// AcceptChar appends one typed character, re-tokenizes the buffer, commits
// the prefix whose rendering can no longer change, and keeps the rest
// pending. The committed output is stable: no later keystroke can imply a
// different rendering for it.
func (r *Resolver) AcceptChar(ch rune) ResolveResult {
	r.buffer = append(r.buffer, ch)
	reg := r.conv.reg
	spans, tail := tokenizer.ScanPending(reg, r.buffer)
	cut := splitCommitBoundary(reg, spans, tail < len(r.buffer))
	if cut == 0 {
		return ResolveResult{Pending: string(r.buffer)}
	}
	boundary := spans[cut-1].Start + spans[cut-1].Length
	commit := render.Render(spans[:cut])
	rest := make([]rune, len(r.buffer)-boundary)
	copy(rest, r.buffer[boundary:])
	r.buffer = rest
	return ResolveResult{Commit: commit, Pending: string(r.buffer)}
}

// RemoveLastChar drops the last pending character, reporting whether there
// was one. It does not re-render; callers re-derive the preview.
func (r *Resolver) RemoveLastChar() bool {
	if len(r.buffer) == 0 {
		return false
	}
	r.buffer = r.buffer[:len(r.buffer)-1]
	return true
}

// PreviewPending renders the whole pending buffer for display. The preview
// is not a commitment and may be revised by the next keystroke.
func (r *Resolver) PreviewPending() string {
	if len(r.buffer) == 0 {
		return ""
	}
	return r.conv.Convert(string(r.buffer))
}

// ForceCommit renders and returns the entire pending buffer and empties it.
// Used on focus loss, selection changes, or an explicit convert request.
func (r *Resolver) ForceCommit() string {
	out := r.PreviewPending()
	r.buffer = nil
	return out
}

// Clear discards any pending text, for external edits that bypass the
// resolver.
func (r *Resolver) Clear() {
	r.buffer = nil
}

// CurrentBuffer returns the pending romanized text.
func (r *Resolver) CurrentBuffer() string { return string(r.buffer) }

// HasPending reports whether any typed text is still unresolved.
func (r *Resolver) HasPending() bool { return len(r.buffer) > 0 }

// splitCommitBoundary finds the index of the first span that must stay
// pending. viableTail marks a buffer whose untokenized remainder is a viable
// prefix of some registered pattern.
//
// The walk holds back, from the end of the buffer:
//   - a trailing token whose surface is a strict prefix of a longer pattern
//     (a single "a" that may yet become "aa"),
//   - a trailing consonant, since a vowel may still arrive and attach,
//   - every consonant standing immediately before held-back material whose
//     outcome can still affect it: a vowel that would attach as a sign, a
//     conjunct-forming consonant, an extendable token, or the viable
//     remainder itself.
//
// A passthrough token stops the walk: punctuation, digits and whitespace
// are never held back, and nothing before them can change.
func splitCommitBoundary(reg *registry.Registry, spans []tokenizer.Span, viableTail bool) int {
	b := len(spans)
	viable := viableTail
	if !viable && b > 0 {
		last := spans[b-1]
		if !last.Passthrough && reg.HasLongerExtension(last.Text) {
			b--
			viable = true
		}
	}
	if !viable && b > 0 && b == len(spans) && heldAsConsonant(spans[b-1]) {
		b--
	}
	for b > 0 {
		prev := spans[b-1]
		if !heldAsConsonant(prev) {
			break
		}
		if viable {
			// Only the token adjacent to the undetermined tail is held
			// for that reason; earlier tokens get the normal checks.
			b--
			viable = false
			continue
		}
		if b >= len(spans) {
			break
		}
		next := spans[b]
		if next.Passthrough {
			break
		}
		np := next.Phoneme
		if np.Category == registry.Vowel || np.Category == registry.Special ||
			np.Join != registry.JoinNone || reg.HasLongerExtension(next.Text) {
			b--
			continue
		}
		break
	}
	return b
}

// heldAsConsonant reports whether a span renders as a consonant whose final
// form depends on what follows it. Self-voweled nasalized consonants never
// consult the next token, so they are always safe to commit.
func heldAsConsonant(s tokenizer.Span) bool {
	if s.Passthrough {
		return false
	}
	switch s.Phoneme.Category {
	case registry.Consonant:
		return true
	case registry.NasalizedConsonant:
		return !s.Phoneme.OwnVowel
	default:
		return false
	}
}
