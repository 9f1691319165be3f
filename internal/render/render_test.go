package render

import (
	"testing"

	"singlish/internal/registry"
	"singlish/internal/tokenizer"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Build(registry.DefaultEntries())
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return reg
}

func TestRenderVowels(t *testing.T) {
	reg := testRegistry(t)
	cases := map[string]string{
		"a":   "අ",
		"aa":  "ආ",
		"ae":  "ඇ",
		"aee": "ඈ",
		"i":   "ඉ",
		"uu":  "ඌ",
		"ai":  "ඓ",
		"au":  "ඖ",
		"ea":  "එඅ",
	}
	for in, want := range cases {
		if got := Render(tokenizer.Tokenize(reg, in)); got != want {
			t.Errorf("Render(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderConsonantVowelAttachment(t *testing.T) {
	reg := testRegistry(t)
	cases := map[string]string{
		"k":   "ක්",
		"ka":  "ක",
		"kaa": "කා",
		"ki":  "කි",
		"kii": "කී",
		"ku":  "කු",
		"koo": "කෝ",
		"kau": "කෞ",
	}
	for in, want := range cases {
		if got := Render(tokenizer.Tokenize(reg, in)); got != want {
			t.Errorf("Render(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderConjuncts(t *testing.T) {
	reg := testRegistry(t)
	cases := map[string]string{
		"kra":  "ක්‍ර",
		"kri":  "ක්‍රි",
		"kya":  "ක්‍ය",
		"kyoo": "ක්‍යෝ",
		// Dedicated combined signs replace the conjunct for u and uu.
		"kru":  "කෘ",
		"kruu": "කෲ",
	}
	for in, want := range cases {
		if got := Render(tokenizer.Tokenize(reg, in)); got != want {
			t.Errorf("Render(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderNasalized(t *testing.T) {
	reg := testRegistry(t)
	cases := map[string]string{
		"mb":  "ඹ්",
		"mba": "ඹ",
		"mbi": "ඹි",
		"nda": "ඳ",
		"nDa": "ඬ",
		"nga": "ඟ",
		// nga spells its own vowel; a following vowel letter stands alone.
		"ngaa": "ඟඅ",
	}
	for in, want := range cases {
		if got := Render(tokenizer.Tokenize(reg, in)); got != want {
			t.Errorf("Render(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderNgDigraphSplits(t *testing.T) {
	reg := testRegistry(t)
	cases := map[string]string{
		"ng":   "න්ග්",
		"ngi":  "න්ගි",
		"ngo":  "න්ගො",
		"nngi": "ඟි",
	}
	for in, want := range cases {
		if got := Render(tokenizer.Tokenize(reg, in)); got != want {
			t.Errorf("Render(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderSpecials(t *testing.T) {
	reg := testRegistry(t)
	cases := map[string]string{
		"x":   "ං",
		"H":   "ඃ",
		"kx":  "කං",
		"lx":  "ලං",
		"axk": "අංක්",
	}
	for in, want := range cases {
		if got := Render(tokenizer.Tokenize(reg, in)); got != want {
			t.Errorf("Render(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderWords(t *testing.T) {
	reg := testRegistry(t)
	cases := map[string]string{
		"amma":    "අම්ම",
		"kolamba": "කොලඹ",
		"oyaata":  "ඔයාට",
		"rata":    "රට",
		"lankaa":  "ලන්කා",
		"laxkaa":  "ලංකා",
	}
	for in, want := range cases {
		if got := Render(tokenizer.Tokenize(reg, in)); got != want {
			t.Errorf("Render(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderPassthrough(t *testing.T) {
	reg := testRegistry(t)
	cases := map[string]string{
		"":         "",
		"123, !?":  "123, !?",
		"k5":       "ක්5",
		"5ka":      "5ක",
		"ka ge":    "ක ගෙ",
		"(kamal)":  "(කමල්)",
	}
	for in, want := range cases {
		if got := Render(tokenizer.Tokenize(reg, in)); got != want {
			t.Errorf("Render(%q) = %q, want %q", in, got, want)
		}
	}
}
