// Package registry holds the Singlish pattern table: the mapping from
// romanized surface forms to Sinhala phonemes, compiled into a prefix trie
// for incremental longest-match queries.
package registry

import (
	"fmt"

	"github.com/derekparker/trie"
	"github.com/samber/lo"
)

// Category classifies a phoneme. The renderer dispatches exhaustively on it.
type Category int

const (
	Consonant Category = iota
	NasalizedConsonant
	Vowel
	Special
)

func (c Category) String() string {
	switch c {
	case Consonant:
		return "consonant"
	case NasalizedConsonant:
		return "nasalized"
	case Vowel:
		return "vowel"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// JoinRole marks consonants that form conjuncts with a preceding consonant.
type JoinRole int

const (
	JoinNone JoinRole = iota
	JoinRakar // "r": base + virama + ZWJ + ර, or the dedicated ෘ/ෲ signs
	JoinYansa // "y": base + virama + ZWJ + ය
)

// Phoneme is one abstract sound with its Sinhala rendering data.
type Phoneme struct {
	Name     string
	Category Category
	Glyph    string // consonant base glyph, standalone vowel, or mark
	Sign     string // dependent vowel sign; empty for the inherent vowel
	RSign    string // composed sign used after a rakar conjunct (u/uu only)
	Inherent bool   // the bare inherent-vowel marker ("a")
	OwnVowel bool   // nasalized form that spells its inherent vowel itself
	Join     JoinRole

	// SplitFirst/SplitSecond are set on a digraph that is phonetically two
	// independent consonants despite its nasal-looking spelling ("ng").
	SplitFirst  *Phoneme
	SplitSecond *Phoneme
}

// Entry binds one romanized surface form to a phoneme. Several surfaces may
// share a phoneme ("v" and "w"); no two entries may share a surface.
type Entry struct {
	Surface string
	Phoneme *Phoneme
}

// Registry is the compiled pattern table. Built once, read-only afterwards,
// safe to share between any number of resolvers.
type Registry struct {
	index   *trie.Trie
	bySurf  map[string]*Phoneme
	maxLen  int
	entries []Entry
}

// Build compiles and validates a pattern table. This is the only fallible
// step in the whole engine: conversion must stay total, so malformed tables
// are rejected here rather than tolerated later.
func Build(entries []Entry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("registry: empty pattern table")
	}
	surfaces := lo.Map(entries, func(e Entry, _ int) string { return e.Surface })
	if dups := lo.FindDuplicates(surfaces); len(dups) > 0 {
		return nil, fmt.Errorf("registry: duplicate surface forms %q", dups)
	}

	reg := &Registry{
		index:   trie.New(),
		bySurf:  make(map[string]*Phoneme, len(entries)),
		entries: entries,
	}
	for _, e := range entries {
		if e.Surface == "" {
			return nil, fmt.Errorf("registry: entry %q has an empty surface form", e.Phoneme.Name)
		}
		if err := validatePhoneme(e.Phoneme); err != nil {
			return nil, fmt.Errorf("registry: surface %q: %w", e.Surface, err)
		}
		runes := []rune(e.Surface)
		if len(runes) > reg.maxLen {
			reg.maxLen = len(runes)
		}
		reg.bySurf[e.Surface] = e.Phoneme
		reg.index.Add(e.Surface, e.Phoneme)
	}
	return reg, nil
}

func validatePhoneme(p *Phoneme) error {
	if p == nil {
		return fmt.Errorf("nil phoneme")
	}
	switch p.Category {
	case Consonant:
		if p.SplitFirst != nil || p.SplitSecond != nil {
			if p.SplitFirst == nil || p.SplitSecond == nil {
				return fmt.Errorf("split digraph %q missing a component", p.Name)
			}
			if p.SplitFirst.Category != Consonant || p.SplitSecond.Category != Consonant {
				return fmt.Errorf("split digraph %q components must be consonants", p.Name)
			}
			return nil
		}
		if p.Glyph == "" {
			return fmt.Errorf("consonant %q has no glyph", p.Name)
		}
	case NasalizedConsonant:
		if p.Glyph == "" {
			return fmt.Errorf("nasalized consonant %q has no glyph", p.Name)
		}
	case Vowel:
		if p.Glyph == "" {
			return fmt.Errorf("vowel %q has no standalone glyph", p.Name)
		}
		if !p.Inherent && p.Sign == "" {
			return fmt.Errorf("vowel %q has no sign form", p.Name)
		}
	case Special:
		if p.Glyph == "" {
			return fmt.Errorf("special %q has no glyph", p.Name)
		}
	default:
		return fmt.Errorf("phoneme %q has unknown category %d", p.Name, p.Category)
	}
	return nil
}

// MaxSurfaceLen is the longest registered surface form, in runes.
func (r *Registry) MaxSurfaceLen() int { return r.maxLen }

// Entries returns the table the registry was built from.
func (r *Registry) Entries() []Entry { return r.entries }

// Lookup returns the phoneme for an exact surface form.
func (r *Registry) Lookup(surface string) (*Phoneme, bool) {
	p, ok := r.bySurf[surface]
	return p, ok
}

// LongestMatchAt returns the length (in runes) and phoneme of the longest
// registered surface form starting at pos, or (0, nil) when none matches.
func (r *Registry) LongestMatchAt(text []rune, pos int) (int, *Phoneme) {
	max := r.maxLen
	if rest := len(text) - pos; rest < max {
		max = rest
	}
	for l := max; l >= 1; l-- {
		if p, ok := r.bySurf[string(text[pos:pos+l])]; ok {
			return l, p
		}
	}
	return 0, nil
}

// IsViablePrefix reports whether s is a prefix of at least one registered
// surface form (including s itself).
func (r *Registry) IsViablePrefix(s string) bool {
	return r.index.HasKeysWithPrefix(s)
}

// HasLongerExtension reports whether s is a complete surface form that is
// also a strict prefix of a longer one ("a" before "aa", "n" before "nd").
func (r *Registry) HasLongerExtension(s string) bool {
	if _, ok := r.bySurf[s]; !ok {
		return false
	}
	for _, key := range r.index.PrefixSearch(s) {
		if len(key) > len(s) {
			return true
		}
	}
	return false
}
