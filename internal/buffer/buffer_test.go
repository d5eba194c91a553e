package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	buf := New("")
	if len(buf.Lines) != 1 || buf.Lines[0] != "" {
		t.Errorf("new buffer should have one empty line, got %v", buf.Lines)
	}
	if buf.Dirty {
		t.Error("new buffer should not be dirty")
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.txt")
	os.WriteFile(path, []byte("hello\nworld\n"), 0644)

	buf := New(path)
	if err := buf.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(buf.Lines) != 2 || buf.Lines[0] != "hello" || buf.Lines[1] != "world" {
		t.Fatalf("unexpected content: %v", buf.Lines)
	}

	if err := buf.InsertChar(0, 5, '!'); err != nil {
		t.Fatalf("InsertChar: %v", err)
	}
	if !buf.Dirty {
		t.Error("buffer should be dirty after edit")
	}

	savePath := filepath.Join(dir, "out.txt")
	if err := buf.Save(savePath); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, _ := os.ReadFile(savePath)
	if string(data) != "hello!\nworld\n" {
		t.Errorf("saved content: %q", string(data))
	}
	if buf.Dirty {
		t.Error("buffer should not be dirty after save")
	}
}

func TestLoadNonexistent(t *testing.T) {
	buf := New(filepath.Join(t.TempDir(), "missing.txt"))
	if err := buf.Load(); err != nil {
		t.Fatalf("Load nonexistent should not error, got: %v", err)
	}
	if len(buf.Lines) != 1 || buf.Lines[0] != "" {
		t.Errorf("expected single empty line for new file, got %v", buf.Lines)
	}
}

func TestLoadNoTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notrl.txt")
	os.WriteFile(path, []byte("line1\nline2"), 0644)

	buf := New(path)
	buf.Load()
	if len(buf.Lines) != 2 || buf.Lines[0] != "line1" || buf.Lines[1] != "line2" {
		t.Errorf("unexpected: %v", buf.Lines)
	}
}

func TestSaveAddsTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	buf := FromLines(path, []string{"hello"})
	buf.Save("")

	data, _ := os.ReadFile(path)
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("saved file should end with newline")
	}
}

func TestInsertChar(t *testing.T) {
	buf := FromLines("", []string{"hello"})

	buf.InsertChar(0, 0, 'H')
	if buf.Lines[0] != "Hhello" {
		t.Errorf("insert at 0: %q", buf.Lines[0])
	}
	buf.InsertChar(0, 6, '!')
	if buf.Lines[0] != "Hhello!" {
		t.Errorf("insert at end: %q", buf.Lines[0])
	}
	buf.InsertChar(0, 3, '-')
	if buf.Lines[0] != "Hhe-llo!" {
		t.Errorf("insert in middle: %q", buf.Lines[0])
	}
}

func TestInsertCharOutOfRange(t *testing.T) {
	buf := FromLines("", []string{"abc"})

	err := buf.InsertChar(0, 4, 'x')
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	var re *RangeError
	if !errors.As(err, &re) || re.Line != 0 || re.Col != 4 {
		t.Errorf("range error: %+v", re)
	}
	if buf.Lines[0] != "abc" || buf.Dirty {
		t.Errorf("rejected insert must not mutate: %v dirty=%v", buf.Lines, buf.Dirty)
	}
	if err := buf.InsertChar(-1, 0, 'x'); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("negative line: %v", err)
	}
	if err := buf.InsertChar(0, 0, '\n'); !errors.Is(err, ErrNewline) {
		t.Errorf("newline: %v", err)
	}
}

func TestInsertCharExtendsBuffer(t *testing.T) {
	buf := FromLines("", []string{"abc"})

	if err := buf.InsertChar(3, 0, 'x'); err != nil {
		t.Fatalf("InsertChar past end: %v", err)
	}
	want := []string{"abc", "", "", "x"}
	if !reflect.DeepEqual(buf.Lines, want) {
		t.Errorf("got %q, want %q", buf.Lines, want)
	}
}

func TestDeleteChar(t *testing.T) {
	buf := FromLines("", []string{"hello"})

	ch, err := buf.DeleteChar(0, 5)
	if err != nil || ch != 'o' {
		t.Errorf("delete last char: ch=%c err=%v", ch, err)
	}
	if buf.Lines[0] != "hell" {
		t.Errorf("after delete: %q", buf.Lines[0])
	}

	ch, _ = buf.DeleteChar(0, 1)
	if ch != 'h' {
		t.Errorf("delete first char: ch=%c", ch)
	}
	if buf.Lines[0] != "ell" {
		t.Errorf("after delete: %q", buf.Lines[0])
	}
}

func TestDeleteCharAtLineStart(t *testing.T) {
	buf := FromLines("", []string{"hello", "world"})

	if _, err := buf.DeleteChar(1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("col 0: expected ErrOutOfRange, got %v", err)
	}
	if _, err := buf.DeleteChar(2, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("missing line: expected ErrOutOfRange, got %v", err)
	}
	if len(buf.Lines) != 2 {
		t.Errorf("lines changed: %v", buf.Lines)
	}
}

func TestUnicodeInsertDelete(t *testing.T) {
	buf := FromLines("", []string{"café"})

	buf.InsertChar(0, 4, '!')
	if buf.Lines[0] != "café!" {
		t.Errorf("unicode insert: %q", buf.Lines[0])
	}
	ch, _ := buf.DeleteChar(0, 4)
	if ch != 'é' {
		t.Errorf("expected é, got %c", ch)
	}
	if buf.Lines[0] != "caf!" {
		t.Errorf("after unicode delete: %q", buf.Lines[0])
	}
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []string
	}{
		{"middle", 5, []string{"hello", "world"}},
		{"start", 0, []string{"", "helloworld"}},
		{"end", 10, []string{"helloworld", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := FromLines("", []string{"helloworld", "next"})
			if err := buf.SplitLine(0, tt.index); err != nil {
				t.Fatalf("SplitLine: %v", err)
			}
			want := append(tt.want, "next")
			if !reflect.DeepEqual(buf.Lines, want) {
				t.Errorf("got %q, want %q", buf.Lines, want)
			}
		})
	}
}

func TestSplitLineOutOfRange(t *testing.T) {
	buf := FromLines("", []string{"abc"})
	if err := buf.SplitLine(0, 4); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("col past end: %v", err)
	}
	if err := buf.SplitLine(1, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("line past end: %v", err)
	}
}

func TestMergeLines(t *testing.T) {
	buf := FromLines("", []string{"hello", "world", "!"})

	if err := buf.MergeLines(0, 1); err != nil {
		t.Fatalf("MergeLines: %v", err)
	}
	if !reflect.DeepEqual(buf.Lines, []string{"helloworld", "!"}) {
		t.Errorf("after merge: %q", buf.Lines)
	}
	if err := buf.MergeLines(1, 2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("merge past end: %v", err)
	}
	if err := buf.MergeLines(0, 0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("merge with itself: %v", err)
	}
}

func TestSplitThenMergeRestoresLine(t *testing.T) {
	const line = "héllo wörld"
	for i := 0; i <= len([]rune(line)); i++ {
		buf := FromLines("", []string{line})
		if err := buf.SplitLine(0, i); err != nil {
			t.Fatalf("split at %d: %v", i, err)
		}
		if err := buf.MergeLines(0, 1); err != nil {
			t.Fatalf("merge after split at %d: %v", i, err)
		}
		if len(buf.Lines) != 1 || buf.Lines[0] != line {
			t.Errorf("split/merge at %d: %q", i, buf.Lines)
		}
	}
}

func TestDeleteRangeMultiLine(t *testing.T) {
	buf := FromLines("", []string{"abcdef", "ghijkl"})

	text, err := buf.DeleteRange(Pos{0, 2}, Pos{1, 3})
	if err != nil {
		t.Fatalf("DeleteRange: %v", err)
	}
	if text != "cdef\nghi" {
		t.Errorf("removed text: %q", text)
	}
	if !reflect.DeepEqual(buf.Lines, []string{"abjkl"}) {
		t.Errorf("after delete: %q", buf.Lines)
	}

	end, err := buf.InsertRange(Pos{0, 2}, text)
	if err != nil {
		t.Fatalf("InsertRange: %v", err)
	}
	if !reflect.DeepEqual(buf.Lines, []string{"abcdef", "ghijkl"}) {
		t.Errorf("after insert: %q", buf.Lines)
	}
	if end != (Pos{1, 3}) {
		t.Errorf("end: %+v", end)
	}
}

func TestDeleteRangeReversedEndpoints(t *testing.T) {
	buf := FromLines("", []string{"abcdef", "ghijkl"})

	text, err := buf.DeleteRange(Pos{1, 3}, Pos{0, 2})
	if err != nil || text != "cdef\nghi" {
		t.Fatalf("reversed: %q %v", text, err)
	}
}

func TestDeleteRangeSingleLine(t *testing.T) {
	buf := FromLines("", []string{"hello world"})

	text, err := buf.DeleteRange(Pos{0, 5}, Pos{0, 11})
	if err != nil || text != " world" {
		t.Fatalf("removed %q err=%v", text, err)
	}
	if !reflect.DeepEqual(buf.Lines, []string{"hello"}) {
		t.Errorf("after delete: %q", buf.Lines)
	}
}

func TestDeleteRangeWholeLine(t *testing.T) {
	buf := FromLines("", []string{"one", "two", "three"})

	text, err := buf.DeleteRange(Pos{1, 0}, Pos{1, 3})
	if err != nil {
		t.Fatalf("DeleteRange: %v", err)
	}
	if text != "two\n" {
		t.Errorf("removed text: %q", text)
	}
	if !reflect.DeepEqual(buf.Lines, []string{"one", "three"}) {
		t.Errorf("whole line should be removed: %q", buf.Lines)
	}

	buf.InsertRange(Pos{1, 0}, text)
	if !reflect.DeepEqual(buf.Lines, []string{"one", "two", "three"}) {
		t.Errorf("after reinsert: %q", buf.Lines)
	}
}

func TestDeleteRangeWholeLastLineKeepsLine(t *testing.T) {
	buf := FromLines("", []string{"one", "two"})

	text, _ := buf.DeleteRange(Pos{1, 0}, Pos{1, 3})
	if text != "two" {
		t.Errorf("removed text: %q", text)
	}
	if !reflect.DeepEqual(buf.Lines, []string{"one", ""}) {
		t.Errorf("last line should be emptied, not removed: %q", buf.Lines)
	}
}

func TestDeleteRangeEmptyIsNoop(t *testing.T) {
	buf := FromLines("", []string{"", "x"})

	text, err := buf.DeleteRange(Pos{0, 0}, Pos{0, 0})
	if err != nil || text != "" {
		t.Fatalf("empty range: %q %v", text, err)
	}
	if len(buf.Lines) != 2 || buf.Dirty {
		t.Errorf("empty range mutated buffer: %q dirty=%v", buf.Lines, buf.Dirty)
	}
}

func TestDeleteRangeOutOfRange(t *testing.T) {
	buf := FromLines("", []string{"abc"})
	if _, err := buf.DeleteRange(Pos{0, 0}, Pos{1, 0}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if buf.Lines[0] != "abc" {
		t.Errorf("buffer mutated: %q", buf.Lines)
	}
}

func TestDeleteThenInsertRangeRoundTrip(t *testing.T) {
	orig := []string{"first line", "second", "", "fourth line here", "end"}
	ranges := [][2]Pos{
		{{0, 0}, {0, 10}},
		{{0, 3}, {0, 7}},
		{{0, 6}, {3, 4}},
		{{1, 0}, {3, 16}},
		{{0, 0}, {4, 3}},
		{{2, 0}, {3, 0}},
		{{3, 5}, {4, 0}},
		{{4, 0}, {4, 3}},
	}
	for _, r := range ranges {
		buf := FromLines("", orig)
		text, err := buf.DeleteRange(r[0], r[1])
		if err != nil {
			t.Fatalf("delete %v: %v", r, err)
		}
		if _, err := buf.InsertRange(r[0], text); err != nil {
			t.Fatalf("insert %v: %v", r, err)
		}
		if !reflect.DeepEqual(buf.Lines, orig) {
			t.Errorf("round trip %v (text %q): got %q", r, text, buf.Lines)
		}
	}
}

func TestInsertThenRemoveRangeRoundTrip(t *testing.T) {
	tests := []struct {
		lines []string
		at    Pos
		text  string
	}{
		{[]string{"", "y"}, Pos{0, 0}, "abc\n"},
		{[]string{"a", "", "z"}, Pos{1, 0}, "x\ny\n"},
		{[]string{"ab", "cd"}, Pos{0, 1}, "\n"},
		{[]string{"ab"}, Pos{0, 2}, "\n\n"},
		{[]string{"one", "two"}, Pos{1, 3}, "three"},
	}
	for _, tt := range tests {
		buf := FromLines("", tt.lines)
		end, err := buf.InsertRange(tt.at, tt.text)
		if err != nil {
			t.Fatalf("insert %q: %v", tt.text, err)
		}
		removed, err := buf.RemoveRange(tt.at, end)
		if err != nil {
			t.Fatalf("remove %q: %v", tt.text, err)
		}
		if removed != tt.text {
			t.Errorf("removed %q, want %q", removed, tt.text)
		}
		if !reflect.DeepEqual(buf.Lines, tt.lines) {
			t.Errorf("insert then remove %q: got %q, want %q", tt.text, buf.Lines, tt.lines)
		}
	}
}

func TestRemoveRangeKeepsWholeLines(t *testing.T) {
	buf := FromLines("", []string{"abc", "", "y"})
	if _, err := buf.RemoveRange(Pos{0, 0}, Pos{0, 3}); err != nil {
		t.Fatalf("RemoveRange: %v", err)
	}
	if want := []string{"", "", "y"}; !reflect.DeepEqual(buf.Lines, want) {
		t.Errorf("got %q, want %q", buf.Lines, want)
	}
	if _, err := buf.RemoveRange(Pos{0, 0}, Pos{3, 0}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestInsertRangeSingleFragment(t *testing.T) {
	buf := FromLines("", []string{"held"})
	end, err := buf.InsertRange(Pos{0, 2}, "llo wor")
	if err != nil {
		t.Fatalf("InsertRange: %v", err)
	}
	if buf.Lines[0] != "hello world" {
		t.Errorf("got %q", buf.Lines[0])
	}
	if end != (Pos{0, 9}) {
		t.Errorf("end: %+v", end)
	}
}

func TestText(t *testing.T) {
	buf := FromLines("", []string{"abcdef", "ghijkl"})
	text, err := buf.Text(Pos{1, 3}, Pos{0, 2})
	if err != nil || text != "cdef\nghi" {
		t.Errorf("Text: %q %v", text, err)
	}
	if buf.Dirty {
		t.Error("Text must not mark the buffer dirty")
	}
}

func TestLineLen(t *testing.T) {
	buf := FromLines("", []string{"hello", "日本語"})
	if buf.LineLen(0) != 5 {
		t.Errorf("expected 5, got %d", buf.LineLen(0))
	}
	if buf.LineLen(1) != 3 {
		t.Errorf("expected 3 for Japanese, got %d", buf.LineLen(1))
	}
}

func TestWordCount(t *testing.T) {
	buf := FromLines("", []string{"hello world", "foo bar baz", ""})
	if got := buf.WordCount(); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}

func TestComparePos(t *testing.T) {
	a, b := Normalize(Pos{2, 1}, Pos{1, 9})
	if a != (Pos{1, 9}) || b != (Pos{2, 1}) {
		t.Errorf("Normalize: %v %v", a, b)
	}
	if ComparePos(Pos{1, 1}, Pos{1, 1}) != 0 {
		t.Error("equal positions should compare 0")
	}
	if ComparePos(Pos{0, 5}, Pos{0, 6}) != -1 {
		t.Error("column order")
	}
}
