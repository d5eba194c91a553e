package buffer

// InsertChar inserts a character at the given line and column position.
// Typing past the last line first extends the buffer with empty lines.
func (b *Buffer) InsertChar(line, col int, ch rune) error {
	if ch == '\n' {
		return ErrNewline
	}
	if line < 0 {
		return outOfRange("insert char", line, col)
	}
	if line >= len(b.Lines) {
		if col != 0 {
			return outOfRange("insert char", line, col)
		}
		for len(b.Lines) <= line {
			b.Lines = append(b.Lines, "")
		}
	}
	runes := []rune(b.Lines[line])
	if col < 0 || col > len(runes) {
		return outOfRange("insert char", line, col)
	}
	newRunes := make([]rune, 0, len(runes)+1)
	newRunes = append(newRunes, runes[:col]...)
	newRunes = append(newRunes, ch)
	newRunes = append(newRunes, runes[col:]...)
	b.Lines[line] = string(newRunes)
	b.Dirty = true
	return nil
}

// DeleteChar deletes the character before the given position and returns it.
// col == 0 has nothing before it and is rejected; joining lines is MergeLines.
func (b *Buffer) DeleteChar(line, col int) (rune, error) {
	if !b.valid(line, col) || col == 0 {
		return 0, outOfRange("delete char", line, col)
	}
	runes := []rune(b.Lines[line])
	ch := runes[col-1]
	newRunes := make([]rune, 0, len(runes)-1)
	newRunes = append(newRunes, runes[:col-1]...)
	newRunes = append(newRunes, runes[col:]...)
	b.Lines[line] = string(newRunes)
	b.Dirty = true
	return ch, nil
}

// SplitLine breaks the line at index; the suffix becomes a new line right
// after it.
func (b *Buffer) SplitLine(line, index int) error {
	if !b.valid(line, index) {
		return outOfRange("split line", line, index)
	}
	runes := []rune(b.Lines[line])
	before := string(runes[:index])
	after := string(runes[index:])
	b.Lines[line] = before
	newLines := make([]string, 0, len(b.Lines)+1)
	newLines = append(newLines, b.Lines[:line+1]...)
	newLines = append(newLines, after)
	newLines = append(newLines, b.Lines[line+1:]...)
	b.Lines = newLines
	b.Dirty = true
	return nil
}

// MergeLines appends line next onto line and removes next. next must be
// the line immediately after line.
func (b *Buffer) MergeLines(line, next int) error {
	if line < 0 || next != line+1 || next >= len(b.Lines) {
		return outOfRange("merge lines", next, 0)
	}
	b.Lines[line] += b.Lines[next]
	b.Lines = append(b.Lines[:next], b.Lines[next+1:]...)
	b.Dirty = true
	return nil
}
