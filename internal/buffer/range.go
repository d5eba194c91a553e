package buffer

import (
	"strings"
	"unicode/utf8"
)

// DeleteRange removes the text in [start, stop) and returns it joined with
// newlines. The endpoints may be given in either order.
//
// When the range covers whole lines (start at column 0, stop at the end of
// its line) and a line follows stop, the covered lines are removed as lines
// and the returned text ends with a newline. InsertRange(start, text) with
// the returned text restores the buffer exactly.
func (b *Buffer) DeleteRange(start, stop Pos) (string, error) {
	start, stop = Normalize(start, stop)
	if !b.valid(start.Line, start.Col) {
		return "", outOfRange("delete range", start.Line, start.Col)
	}
	if !b.valid(stop.Line, stop.Col) {
		return "", outOfRange("delete range", stop.Line, stop.Col)
	}
	if start == stop {
		return "", nil
	}

	last := []rune(b.Lines[stop.Line])
	if start.Col == 0 && stop.Col == len(last) && stop.Line+1 < len(b.Lines) {
		removed := b.slice(start, stop) + "\n"
		newLines := make([]string, 0, len(b.Lines)-(stop.Line-start.Line+1))
		newLines = append(newLines, b.Lines[:start.Line]...)
		newLines = append(newLines, b.Lines[stop.Line+1:]...)
		b.Lines = newLines
		b.Dirty = true
		return removed, nil
	}
	return b.cut(start, stop), nil
}

// RemoveRange removes exactly [start, stop), joining the lines at either end,
// and returns the removed text. Unlike DeleteRange it never removes whole
// lines, so it reverses InsertRange for any text, including text ending in a
// newline.
func (b *Buffer) RemoveRange(start, stop Pos) (string, error) {
	start, stop = Normalize(start, stop)
	if !b.valid(start.Line, start.Col) {
		return "", outOfRange("remove range", start.Line, start.Col)
	}
	if !b.valid(stop.Line, stop.Col) {
		return "", outOfRange("remove range", stop.Line, stop.Col)
	}
	if start == stop {
		return "", nil
	}
	return b.cut(start, stop), nil
}

// cut assumes start < stop and both positions are valid.
func (b *Buffer) cut(start, stop Pos) string {
	removed := b.slice(start, stop)
	first := []rune(b.Lines[start.Line])
	last := []rune(b.Lines[stop.Line])
	newLines := make([]string, 0, len(b.Lines)-(stop.Line-start.Line))
	newLines = append(newLines, b.Lines[:start.Line]...)
	newLines = append(newLines, string(first[:start.Col])+string(last[stop.Col:]))
	newLines = append(newLines, b.Lines[stop.Line+1:]...)
	b.Lines = newLines
	b.Dirty = true
	return removed
}

// InsertRange inserts text, which may span several lines, at start and
// returns the position just after the inserted text.
func (b *Buffer) InsertRange(start Pos, text string) (Pos, error) {
	if !b.valid(start.Line, start.Col) {
		return start, outOfRange("insert range", start.Line, start.Col)
	}
	if text == "" {
		return start, nil
	}

	frags := strings.Split(text, "\n")
	runes := []rune(b.Lines[start.Line])
	prefix := string(runes[:start.Col])
	suffix := string(runes[start.Col:])

	n := len(frags)
	newLines := make([]string, 0, len(b.Lines)+n-1)
	newLines = append(newLines, b.Lines[:start.Line]...)
	var end Pos
	if n == 1 {
		newLines = append(newLines, prefix+frags[0]+suffix)
		end = Pos{Line: start.Line, Col: start.Col + utf8.RuneCountInString(frags[0])}
	} else {
		newLines = append(newLines, prefix+frags[0])
		newLines = append(newLines, frags[1:n-1]...)
		newLines = append(newLines, frags[n-1]+suffix)
		end = Pos{Line: start.Line + n - 1, Col: utf8.RuneCountInString(frags[n-1])}
	}
	newLines = append(newLines, b.Lines[start.Line+1:]...)
	b.Lines = newLines
	b.Dirty = true
	return end, nil
}

// Text returns the text in [start, stop) without modifying the buffer.
func (b *Buffer) Text(start, stop Pos) (string, error) {
	start, stop = Normalize(start, stop)
	if !b.valid(start.Line, start.Col) {
		return "", outOfRange("text", start.Line, start.Col)
	}
	if !b.valid(stop.Line, stop.Col) {
		return "", outOfRange("text", stop.Line, stop.Col)
	}
	return b.slice(start, stop), nil
}

// slice assumes start <= stop and both positions are valid.
func (b *Buffer) slice(start, stop Pos) string {
	first := []rune(b.Lines[start.Line])
	if start.Line == stop.Line {
		return string(first[start.Col:stop.Col])
	}
	last := []rune(b.Lines[stop.Line])
	parts := make([]string, 0, stop.Line-start.Line+1)
	parts = append(parts, string(first[start.Col:]))
	parts = append(parts, b.Lines[start.Line+1:stop.Line]...)
	parts = append(parts, string(last[:stop.Col]))
	return strings.Join(parts, "\n")
}
