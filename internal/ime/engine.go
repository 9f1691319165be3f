// Package ime drives a Resolver from a stream of typed runes, managing the
// Sinhala/Latin input mode and a preedit display through an Output sink.
package ime

import (
	"singlish"
)

// InputMode selects how typed runes are handled.
type InputMode int

const (
	ModeSinhala InputMode = iota
	ModeLatin
)

func (m InputMode) String() string {
	switch m {
	case ModeSinhala:
		return "sinhala"
	case ModeLatin:
		return "latin"
	default:
		return "unknown"
	}
}

// ParseMode maps a config mode name to an InputMode; unknown names fall back
// to Sinhala.
func ParseMode(name string) InputMode {
	if name == "latin" {
		return ModeLatin
	}
	return ModeSinhala
}

// Output receives committed text and preedit updates. ShowPreedit replaces
// the previously shown preedit entirely.
type Output interface {
	CommitText(text string)
	ShowPreedit(text string)
}

// Engine owns one resolver and one output sink. Like the resolver it is
// single-session: drive it from one goroutine.
type Engine struct {
	mode    InputMode
	res     *singlish.Resolver
	out     Output
	preedit string
}

func NewEngine(conv *singlish.Converter, mode InputMode, out Output) *Engine {
	return &Engine{mode: mode, res: conv.NewResolver(), out: out}
}

func (e *Engine) Mode() InputMode { return e.mode }

// HandleRune feeds one typed character. In Latin mode it is committed
// verbatim; in Sinhala mode it goes through the resolver and whatever became
// final is committed, with the rest shown as preedit.
func (e *Engine) HandleRune(r rune) {
	if e.mode != ModeSinhala {
		e.out.CommitText(string(r))
		return
	}
	result := e.res.AcceptChar(r)
	if result.Commit != "" {
		e.setPreedit("")
		e.out.CommitText(result.Commit)
	}
	e.setPreedit(e.res.PreviewPending())
}

// HandleBackspace removes the last pending character. It reports false when
// nothing was pending, in which case the caller should erase committed text
// itself.
func (e *Engine) HandleBackspace() bool {
	if e.mode != ModeSinhala {
		return false
	}
	if !e.res.RemoveLastChar() {
		return false
	}
	e.setPreedit(e.res.PreviewPending())
	return true
}

// Toggle flushes any pending text and flips the input mode.
func (e *Engine) Toggle() InputMode {
	e.Flush()
	if e.mode == ModeSinhala {
		e.mode = ModeLatin
	} else {
		e.mode = ModeSinhala
	}
	return e.mode
}

// Flush commits whatever is pending, clearing the preedit.
func (e *Engine) Flush() {
	e.setPreedit("")
	if out := e.res.ForceCommit(); out != "" {
		e.out.CommitText(out)
	}
}

// Abort discards pending text without committing it, for external edits
// that bypass the engine.
func (e *Engine) Abort() {
	e.setPreedit("")
	e.res.Clear()
}

// Pending reports whether the resolver holds unresolved text.
func (e *Engine) Pending() bool { return e.res.HasPending() }

// Buffer returns the unresolved romanized text, for status displays.
func (e *Engine) Buffer() string { return e.res.CurrentBuffer() }

func (e *Engine) setPreedit(text string) {
	if text == e.preedit {
		return
	}
	e.preedit = text
	e.out.ShowPreedit(text)
}
