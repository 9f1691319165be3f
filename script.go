package singlish

import (
	"strings"
	"unicode"
)

// sinhalaBlock is the Sinhala Unicode block, U+0D80–U+0DFF.
var sinhalaBlock = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0d80, Hi: 0x0dff, Stride: 1}},
}

// IsScriptRune reports whether r falls in the Sinhala code-point range.
func IsScriptRune(r rune) bool {
	return unicode.Is(sinhalaBlock, r)
}

// Segment is a maximal run of text that is either entirely inside or
// entirely outside the Sinhala block.
type Segment struct {
	Text   string
	Script bool
}

// SegmentByScript splits text into contiguous script / non-script runs.
// Concatenating the segment texts reproduces the input exactly.
func SegmentByScript(text string) []Segment {
	var segments []Segment
	var run strings.Builder
	current := false
	for _, r := range text {
		script := IsScriptRune(r)
		if run.Len() > 0 && script != current {
			segments = append(segments, Segment{Text: run.String(), Script: current})
			run.Reset()
		}
		current = script
		run.WriteRune(r)
	}
	if run.Len() > 0 {
		segments = append(segments, Segment{Text: run.String(), Script: current})
	}
	return segments
}
