package editor

import (
	"unicode"

	"github.com/JackWReid/tpad/internal/buffer"
)

// wordSpan is a run of word characters on one line, in rune columns.
type wordSpan struct {
	Start int
	End   int
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func wordSpans(line string) []wordSpan {
	var spans []wordSpan
	runes := []rune(line)
	inWord := false
	var start int

	for i, r := range runes {
		if isWordChar(r) {
			if !inWord {
				start = i
				inWord = true
			}
		} else if inWord {
			spans = append(spans, wordSpan{Start: start, End: i})
			inWord = false
		}
	}
	if inWord {
		spans = append(spans, wordSpan{Start: start, End: len(runes)})
	}
	return spans
}

// nextWordStart is the start of the first word after pos, or the end of the
// buffer.
func nextWordStart(b *buffer.Buffer, pos buffer.Pos) buffer.Pos {
	for line := pos.Line; line < b.LineCount(); line++ {
		for _, s := range wordSpans(b.Line(line)) {
			if line > pos.Line || s.Start > pos.Col {
				return buffer.Pos{Line: line, Col: s.Start}
			}
		}
	}
	last := b.LineCount() - 1
	return buffer.Pos{Line: last, Col: b.LineLen(last)}
}

// prevWordStart is the start of the last word before pos, or 0:0.
func prevWordStart(b *buffer.Buffer, pos buffer.Pos) buffer.Pos {
	for line := pos.Line; line >= 0; line-- {
		spans := wordSpans(b.Line(line))
		for i := len(spans) - 1; i >= 0; i-- {
			if line < pos.Line || spans[i].Start < pos.Col {
				return buffer.Pos{Line: line, Col: spans[i].Start}
			}
		}
	}
	return buffer.Pos{}
}
