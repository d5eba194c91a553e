package buffer

import (
	"os"
	"strings"
	"unicode/utf8"
)

// Buffer holds the text content as a slice of lines (hard lines, split on \n).
// It always holds at least one line.
type Buffer struct {
	Lines    []string
	Dirty    bool
	Filename string
}

func New(filename string) *Buffer {
	return &Buffer{
		Lines:    []string{""},
		Filename: filename,
	}
}

// FromLines builds a clean buffer around existing content.
func FromLines(filename string, lines []string) *Buffer {
	b := New(filename)
	if len(lines) > 0 {
		b.Lines = append([]string(nil), lines...)
	}
	return b
}

// Load reads a file into the buffer.
func (b *Buffer) Load() error {
	if b.Filename == "" {
		return nil
	}
	data, err := os.ReadFile(b.Filename)
	if err != nil {
		if os.IsNotExist(err) {
			// New file: start with an empty buffer.
			b.Lines = []string{""}
			b.Dirty = false
			return nil
		}
		return err
	}
	// Strip trailing newline to avoid a phantom empty line.
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		b.Lines = []string{""}
	} else {
		b.Lines = strings.Split(text, "\n")
	}
	b.Dirty = false
	return nil
}

// Save writes the buffer to the given filename (or current filename).
func (b *Buffer) Save(filename string) error {
	if filename != "" {
		b.Filename = filename
	}
	if b.Filename == "" {
		return nil // Caller should prompt for a name.
	}
	if err := os.WriteFile(b.Filename, []byte(b.String()+"\n"), 0644); err != nil {
		return err
	}
	b.Dirty = false
	return nil
}

// String returns the content joined with newlines.
func (b *Buffer) String() string {
	return strings.Join(b.Lines, "\n")
}

// Line returns the content of a line, or "" when idx is out of range.
func (b *Buffer) Line(idx int) string {
	if idx < 0 || idx >= len(b.Lines) {
		return ""
	}
	return b.Lines[idx]
}

// LineLen returns the rune-length of a given line.
func (b *Buffer) LineLen(line int) int {
	if line < 0 || line >= len(b.Lines) {
		return 0
	}
	return utf8.RuneCountInString(b.Lines[line])
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.Lines)
}

// WordCount returns the number of whitespace-separated words.
func (b *Buffer) WordCount() int {
	n := 0
	for _, line := range b.Lines {
		n += len(strings.Fields(line))
	}
	return n
}

// Size returns the byte size of the joined content.
func (b *Buffer) Size() int {
	return len(b.String())
}

// valid reports whether (line, col) addresses an existing line and a column
// in [0, len(line)].
func (b *Buffer) valid(line, col int) bool {
	if line < 0 || line >= len(b.Lines) {
		return false
	}
	return col >= 0 && col <= b.LineLen(line)
}
