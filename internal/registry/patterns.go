package registry

// Default Singlish pattern table for the Sinhala script (U+0D80–U+0DFF).
// Aspirated and retroflex letters use either an "h" suffix or an uppercase
// first letter; long vowels double the letter. Unlisted characters pass
// through the converter verbatim.

func consonant(name, glyph string) *Phoneme {
	return &Phoneme{Name: name, Category: Consonant, Glyph: glyph}
}

func joining(name, glyph string, role JoinRole) *Phoneme {
	return &Phoneme{Name: name, Category: Consonant, Glyph: glyph, Join: role}
}

func nasalized(name, glyph string) *Phoneme {
	return &Phoneme{Name: name, Category: NasalizedConsonant, Glyph: glyph}
}

func vowel(name, standalone, sign string) *Phoneme {
	return &Phoneme{Name: name, Category: Vowel, Glyph: standalone, Sign: sign}
}

func special(name, glyph string) *Phoneme {
	return &Phoneme{Name: name, Category: Special, Glyph: glyph}
}

// DefaultEntries returns the stock Singlish→Sinhala table.
func DefaultEntries() []Entry {
	// Vowels. "a" is the inherent-vowel marker: after a consonant it adds
	// no sign at all, standalone it renders අ.
	a := &Phoneme{Name: "a", Category: Vowel, Glyph: "අ", Inherent: true}
	aa := vowel("aa", "ආ", "ා")
	ae := vowel("ae", "ඇ", "ැ")
	aee := vowel("aee", "ඈ", "ෑ")
	i := vowel("i", "ඉ", "ි")
	ii := vowel("ii", "ඊ", "ී")
	u := vowel("u", "උ", "ු")
	uu := vowel("uu", "ඌ", "ූ")
	e := vowel("e", "එ", "ෙ")
	ee := vowel("ee", "ඒ", "ේ")
	ai := vowel("ai", "ඓ", "ෛ")
	o := vowel("o", "ඔ", "ො")
	oo := vowel("oo", "ඕ", "ෝ")
	au := vowel("au", "ඖ", "ෞ")
	// u and uu have dedicated composed signs after a rakar conjunct:
	// "kru" is කෘ, not ක්‍රු.
	u.RSign = "ෘ"
	uu.RSign = "ෲ"

	na := consonant("na", "න")
	ga := consonant("ga", "ග")
	va := consonant("va", "ව")

	// "ng" looks like a nasal unit but is two separate consonants; the
	// renderer joins them with a virama instead of using ඟ. The spelled-out
	// "nga" form is the true nasalized letter and carries its own inherent
	// vowel, so it never consults the following token.
	ng := &Phoneme{Name: "ng", Category: Consonant, SplitFirst: na, SplitSecond: ga}
	nga := &Phoneme{Name: "nga", Category: NasalizedConsonant, Glyph: "ඟ", OwnVowel: true}

	entries := []Entry{
		{"a", a}, {"aa", aa}, {"A", aa}, {"ae", ae}, {"aee", aee},
		{"i", i}, {"ii", ii}, {"u", u}, {"uu", uu},
		{"e", e}, {"ee", ee}, {"ai", ai},
		{"o", o}, {"oo", oo}, {"au", au},

		{"k", consonant("ka", "ක")}, {"kh", consonant("kha", "ඛ")},
		{"g", ga}, {"gh", consonant("gha", "ඝ")},
		{"ch", consonant("ca", "ච")}, {"chh", consonant("cha", "ඡ")},
		{"j", consonant("ja", "ජ")}, {"jh", consonant("jha", "ඣ")},
		{"gn", consonant("jnya", "ඥ")},
		{"t", consonant("tta", "ට")}, {"T", consonant("ttha", "ඨ")},
		{"d", consonant("dda", "ඩ")}, {"D", consonant("ddha", "ඪ")},
		{"N", consonant("nna", "ණ")},
		{"th", consonant("ta", "ත")}, {"Th", consonant("tha", "ථ")},
		{"dh", consonant("da", "ද")}, {"Dh", consonant("dha", "ධ")},
		{"n", na},
		{"p", consonant("pa", "ප")}, {"ph", consonant("pha", "ඵ")},
		{"b", consonant("ba", "බ")}, {"bh", consonant("bha", "භ")},
		{"m", consonant("ma", "ම")},
		{"y", joining("ya", "ය", JoinYansa)},
		{"r", joining("ra", "ර", JoinRakar)},
		{"l", consonant("la", "ල")}, {"L", consonant("lla", "ළ")},
		{"v", va}, {"w", va},
		{"s", consonant("sa", "ස")}, {"sh", consonant("sha", "ශ")},
		{"Sh", consonant("ssha", "ෂ")},
		{"h", consonant("ha", "හ")}, {"f", consonant("fa", "ෆ")},

		{"nd", nasalized("nda", "ඳ")}, {"nD", nasalized("ndda", "ඬ")},
		{"mb", nasalized("mba", "ඹ")}, {"nng", nasalized("nnga", "ඟ")},
		{"ng", ng}, {"nga", nga},

		{"x", special("anusvara", "ං")}, {"H", special("visarga", "ඃ")},
	}
	return entries
}
