package ime

import (
	"testing"

	"singlish"
)

type fakeOutput struct {
	buffer  []rune
	preedit string
}

func (f *fakeOutput) CommitText(text string) {
	f.buffer = append(f.buffer, []rune(text)...)
}

func (f *fakeOutput) ShowPreedit(text string) {
	f.preedit = text
}

func (f *fakeOutput) String() string { return string(f.buffer) }

func newTestEngine(t *testing.T, mode InputMode) (*Engine, *fakeOutput) {
	t.Helper()
	conv, err := singlish.NewConverter()
	if err != nil {
		t.Fatalf("new converter: %v", err)
	}
	out := &fakeOutput{}
	return NewEngine(conv, mode, out), out
}

func typeString(eng *Engine, text string) {
	for _, r := range text {
		eng.HandleRune(r)
	}
}

func TestEngineComposesWord(t *testing.T) {
	eng, out := newTestEngine(t, ModeSinhala)

	typeString(eng, "kolamba")
	eng.Flush()

	if out.String() != "කොලඹ" {
		t.Fatalf("expected committed කොලඹ, got %q", out.String())
	}
	if out.preedit != "" {
		t.Fatalf("expected empty preedit after flush, got %q", out.preedit)
	}
}

func TestEnginePreeditTracksPending(t *testing.T) {
	eng, out := newTestEngine(t, ModeSinhala)

	eng.HandleRune('k')
	if out.preedit != "ක්" {
		t.Fatalf("expected preedit ක් after k, got %q", out.preedit)
	}
	if out.String() != "" {
		t.Fatalf("expected no commit after k, got %q", out.String())
	}

	eng.HandleRune('a')
	if out.preedit != "ක" {
		t.Fatalf("expected preedit ක after ka, got %q", out.preedit)
	}
}

func TestEngineLatinModePassesThrough(t *testing.T) {
	eng, out := newTestEngine(t, ModeLatin)

	typeString(eng, "kolamba")
	if out.String() != "kolamba" {
		t.Fatalf("latin mode altered input: %q", out.String())
	}
	if eng.Pending() {
		t.Fatal("latin mode should never buffer")
	}
}

func TestEngineToggleFlushesPending(t *testing.T) {
	eng, out := newTestEngine(t, ModeSinhala)

	eng.HandleRune('k')
	if mode := eng.Toggle(); mode != ModeLatin {
		t.Fatalf("expected latin after toggle, got %v", mode)
	}
	if out.String() != "ක්" {
		t.Fatalf("toggle should flush pending text, got %q", out.String())
	}

	typeString(eng, "ok")
	if out.String() != "ක්ok" {
		t.Fatalf("expected verbatim latin after toggle, got %q", out.String())
	}

	if mode := eng.Toggle(); mode != ModeSinhala {
		t.Fatalf("expected sinhala after second toggle, got %v", mode)
	}
}

func TestEngineBackspace(t *testing.T) {
	eng, out := newTestEngine(t, ModeSinhala)

	eng.HandleRune('k')
	eng.HandleRune('r')
	if !eng.HandleBackspace() {
		t.Fatal("expected backspace to consume a pending character")
	}
	if out.preedit != "ක්" {
		t.Fatalf("expected preedit ක් after backspace, got %q", out.preedit)
	}

	eng.HandleBackspace()
	if eng.HandleBackspace() {
		t.Fatal("backspace with no pending text should report false")
	}
}

func TestEngineBackspaceInLatinMode(t *testing.T) {
	eng, _ := newTestEngine(t, ModeLatin)
	if eng.HandleBackspace() {
		t.Fatal("latin mode has no pending text to remove")
	}
}

func TestEngineAbortDiscardsPending(t *testing.T) {
	eng, out := newTestEngine(t, ModeSinhala)

	eng.HandleRune('k')
	eng.Abort()
	if out.String() != "" {
		t.Fatalf("abort committed %q", out.String())
	}
	if eng.Pending() || eng.Buffer() != "" {
		t.Fatal("abort should empty the buffer")
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("latin") != ModeLatin {
		t.Fatal("latin should parse to ModeLatin")
	}
	if ParseMode("sinhala") != ModeSinhala {
		t.Fatal("sinhala should parse to ModeSinhala")
	}
	if ParseMode("gibberish") != ModeSinhala {
		t.Fatal("unknown names fall back to ModeSinhala")
	}
}
