package history

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/JackWReid/tpad/internal/buffer"
)

func TestUndoInsertChar(t *testing.T) {
	buf := buffer.FromLines("", []string{"hello", "world"})
	log := NewLog()

	buf.InsertChar(0, 5, '!')
	log.Push(&InsertChar{Line: 0, Col: 5, Ch: '!'})

	land, ok, err := log.Undo(buf)
	if err != nil || !ok {
		t.Fatalf("undo should succeed: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(buf.Lines, []string{"hello", "world"}) {
		t.Errorf("after undo: %q", buf.Lines)
	}
	if land != (Landing{Line: 0, Col: 5}) {
		t.Errorf("landing after undo: %+v", land)
	}
}

func TestUndoDeleteChar(t *testing.T) {
	buf := buffer.FromLines("", []string{"hello"})
	log := NewLog()

	ch, _ := buf.DeleteChar(0, 5)
	log.Push(&DeleteChar{Line: 0, Col: 4, Ch: ch})

	land, ok, err := log.Undo(buf)
	if err != nil || !ok {
		t.Fatalf("undo should succeed: ok=%v err=%v", ok, err)
	}
	if buf.Lines[0] != "hello" {
		t.Errorf("after undo: %q", buf.Lines[0])
	}
	if land != (Landing{Line: 0, Col: 4, AddOffset: true}) {
		t.Errorf("landing: %+v", land)
	}

	land, _, _ = log.Redo(buf)
	if buf.Lines[0] != "hell" {
		t.Errorf("after redo: %q", buf.Lines[0])
	}
	if land != (Landing{Line: 0, Col: 4}) {
		t.Errorf("landing after redo: %+v", land)
	}
}

func TestUndoSplitLine(t *testing.T) {
	buf := buffer.FromLines("", []string{"helloworld"})
	log := NewLog()

	buf.SplitLine(0, 5)
	log.Push(&SplitLine{FirstLine: 0, SplitIndex: 5, SecondLine: 1})

	land, _, err := log.Undo(buf)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if len(buf.Lines) != 1 || buf.Lines[0] != "helloworld" {
		t.Errorf("after undo: %q", buf.Lines)
	}
	if land.Line != 0 || land.Col != 5 {
		t.Errorf("landing: %+v", land)
	}

	land, _, _ = log.Redo(buf)
	if !reflect.DeepEqual(buf.Lines, []string{"hello", "world"}) {
		t.Errorf("after redo: %q", buf.Lines)
	}
	if land.Line != 1 || land.Col != 0 {
		t.Errorf("landing after redo: %+v", land)
	}
}

func TestUndoMergeLines(t *testing.T) {
	buf := buffer.FromLines("", []string{"foo", "bar"})
	log := NewLog()

	buf.MergeLines(0, 1)
	log.Push(&MergeLines{MergedLine: 0, MergePoint: 3})

	land, _, _ := log.Undo(buf)
	if !reflect.DeepEqual(buf.Lines, []string{"foo", "bar"}) {
		t.Errorf("after undo: %q", buf.Lines)
	}
	if land.Line != 0 || land.Col != 3 {
		t.Errorf("landing: %+v", land)
	}

	log.Redo(buf)
	if !reflect.DeepEqual(buf.Lines, []string{"foobar"}) {
		t.Errorf("after redo: %q", buf.Lines)
	}
}

func TestUndoSelections(t *testing.T) {
	buf := buffer.FromLines("", []string{"abcdef", "ghijkl"})
	log := NewLog()

	start, stop := buffer.Pos{Line: 0, Col: 2}, buffer.Pos{Line: 1, Col: 3}
	text, _ := buf.DeleteRange(start, stop)
	log.Push(&DeleteSelection{Start: start, Stop: stop, Text: text})

	end, _ := buf.InsertRange(start, "XY\nZ")
	log.Push(&InsertSelection{Start: start, Stop: end, Text: "XY\nZ"})
	if !reflect.DeepEqual(buf.Lines, []string{"abXY", "Zjkl"}) {
		t.Fatalf("setup: %q", buf.Lines)
	}

	land, _, _ := log.Undo(buf)
	if !reflect.DeepEqual(buf.Lines, []string{"abjkl"}) {
		t.Errorf("after undoing insert: %q", buf.Lines)
	}
	if land.Line != 0 || land.Col != 2 {
		t.Errorf("landing: %+v", land)
	}

	land, _, _ = log.Undo(buf)
	if !reflect.DeepEqual(buf.Lines, []string{"abcdef", "ghijkl"}) {
		t.Errorf("after undoing delete: %q", buf.Lines)
	}
	if land.Line != 1 || land.Col != 3 {
		t.Errorf("landing: %+v", land)
	}

	log.Redo(buf)
	land, _, _ = log.Redo(buf)
	if !reflect.DeepEqual(buf.Lines, []string{"abXY", "Zjkl"}) {
		t.Errorf("after redo: %q", buf.Lines)
	}
	if land.Line != 1 || land.Col != 1 {
		t.Errorf("landing after redo: %+v", land)
	}
}

func TestUndoInsertSelectionEndingInNewline(t *testing.T) {
	tests := []struct {
		lines []string
		start buffer.Pos
		text  string
		after []string
	}{
		{[]string{"", "y"}, buffer.Pos{Line: 0, Col: 0}, "abc\n", []string{"abc", "", "y"}},
		{[]string{"a", "", "z"}, buffer.Pos{Line: 1, Col: 0}, "x\ny\n", []string{"a", "x", "y", "", "z"}},
	}
	for _, tt := range tests {
		buf := buffer.FromLines("", tt.lines)
		log := NewLog()
		end, _ := buf.InsertRange(tt.start, tt.text)
		log.Push(&InsertSelection{Start: tt.start, Stop: end, Text: tt.text})

		if _, _, err := log.Undo(buf); err != nil {
			t.Fatalf("undo %q: %v", tt.text, err)
		}
		if !reflect.DeepEqual(buf.Lines, tt.lines) {
			t.Errorf("undo %q: got %q, want %q", tt.text, buf.Lines, tt.lines)
		}
		if _, _, err := log.Redo(buf); err != nil {
			t.Fatalf("redo %q: %v", tt.text, err)
		}
		if !reflect.DeepEqual(buf.Lines, tt.after) {
			t.Errorf("redo %q: got %q, want %q", tt.text, buf.Lines, tt.after)
		}
	}
}

func TestUndoInsertCharPastEnd(t *testing.T) {
	buf := buffer.FromLines("", []string{"a"})
	log := NewLog()

	buf.InsertChar(3, 0, 'x')
	log.Push(&InsertChar{Line: 3, Col: 0, Ch: 'x', Grown: 3})

	land, _, err := log.Undo(buf)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if !reflect.DeepEqual(buf.Lines, []string{"a"}) {
		t.Errorf("after undo: %q", buf.Lines)
	}
	if land != (Landing{Line: 0, Col: 1}) {
		t.Errorf("landing: %+v", land)
	}

	log.Redo(buf)
	if !reflect.DeepEqual(buf.Lines, []string{"a", "", "", "x"}) {
		t.Errorf("after redo: %q", buf.Lines)
	}
}

func TestUndoRedoBoundaries(t *testing.T) {
	buf := buffer.New("")
	log := NewLog()

	if _, _, err := log.Undo(buf); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("empty log undo: %v", err)
	}
	if _, _, err := log.Redo(buf); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("empty log redo: %v", err)
	}

	buf.InsertChar(0, 0, 'a')
	log.Push(&InsertChar{Line: 0, Col: 0, Ch: 'a'})
	if _, _, err := log.Redo(buf); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("redo at end: %v", err)
	}
	log.Undo(buf)
	if _, _, err := log.Undo(buf); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("undo at start: %v", err)
	}
}

func TestPushDiscardsRedo(t *testing.T) {
	buf := buffer.New("")
	log := NewLog()

	for i, ch := range "abc" {
		buf.InsertChar(0, i, ch)
		log.Push(&InsertChar{Line: 0, Col: i, Ch: ch})
	}
	log.Undo(buf)
	log.Undo(buf)
	if !log.CanRedo() || log.Cursor() != 1 {
		t.Fatalf("expected redo available at cursor 1, got cursor %d", log.Cursor())
	}

	buf.InsertChar(0, 1, 'z')
	log.Push(&InsertChar{Line: 0, Col: 1, Ch: 'z'})

	if log.Len() != 2 || log.Cursor() != 2 {
		t.Errorf("len=%d cursor=%d", log.Len(), log.Cursor())
	}
	if _, _, err := log.Redo(buf); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("redo after push: %v", err)
	}
	if buf.Lines[0] != "az" {
		t.Errorf("content: %q", buf.Lines[0])
	}
}

func TestGuardStepsOverUndoneEntry(t *testing.T) {
	buf := buffer.FromLines("", []string{"ab"})
	log := NewLog()
	op := &InsertChar{Line: 0, Col: 1, Ch: 'b'}
	log.Push(op)

	// Simulate an entry whose flag already says it was reversed.
	op.Applied = false
	_, ok, err := log.Undo(buf)
	if err != nil || ok {
		t.Errorf("guarded undo: ok=%v err=%v", ok, err)
	}
	if buf.Lines[0] != "ab" {
		t.Errorf("guarded undo mutated buffer: %q", buf.Lines[0])
	}
	if log.Cursor() != 0 {
		t.Errorf("cursor should step past entry, got %d", log.Cursor())
	}
}

func TestUndoStaleIndexLeavesLogIntact(t *testing.T) {
	buf := buffer.FromLines("", []string{"a"})
	log := NewLog()
	op := &InsertChar{Line: 3, Col: 4, Ch: 'x'}
	log.Push(op)

	_, _, err := log.Undo(buf)
	if !errors.Is(err, buffer.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if log.Cursor() != 1 || !op.Applied {
		t.Errorf("failed undo must not move the log: cursor=%d applied=%v", log.Cursor(), op.Applied)
	}
	if buf.Lines[0] != "a" {
		t.Errorf("buffer changed: %q", buf.Lines)
	}
}

func TestClear(t *testing.T) {
	buf := buffer.FromLines("", []string{"x"})
	log := NewLog()
	log.Push(&InsertChar{Line: 0, Col: 0, Ch: 'x'})
	log.Clear()
	if log.Len() != 0 || log.CanUndo() || log.CanRedo() {
		t.Errorf("clear: len=%d", log.Len())
	}
	if buf.Lines[0] != "x" {
		t.Error("clear must not touch the buffer")
	}
}

func TestLogJSONKeepsAppliedFlags(t *testing.T) {
	buf := buffer.FromLines("", []string{"abcdef", "ghijkl"})
	log := NewLog()

	buf.InsertChar(0, 6, '!')
	log.Push(&InsertChar{Line: 0, Col: 6, Ch: '!'})
	buf.SplitLine(1, 2)
	log.Push(&SplitLine{FirstLine: 1, SplitIndex: 2, SecondLine: 2})
	text, _ := buf.DeleteRange(buffer.Pos{Line: 0, Col: 1}, buffer.Pos{Line: 0, Col: 3})
	log.Push(&DeleteSelection{Start: buffer.Pos{Line: 0, Col: 1}, Stop: buffer.Pos{Line: 0, Col: 3}, Text: text})
	log.Undo(buf)

	data, err := json.Marshal(log)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	restored := NewLog()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(restored.Ops(), log.Ops()) || restored.Cursor() != log.Cursor() {
		t.Fatalf("restored log differs:\n%s", data)
	}

	// The restored log picks up where the original left off.
	if _, _, err := restored.Redo(buf); err != nil {
		t.Fatalf("redo on restored log: %v", err)
	}
	if !reflect.DeepEqual(buf.Lines, []string{"adef!", "gh", "ijkl"}) {
		t.Errorf("after redo: %q", buf.Lines)
	}
}

func TestLogJSONRejectsBadInput(t *testing.T) {
	tests := []string{
		`{"ops":[{"kind":"teleport","data":{}}],"cursor":0}`,
		`{"ops":[],"cursor":1}`,
		`{"ops":[{"kind":"insert_char","data":{"line":0,"col":0,"ch":97,"applied":true}}],"cursor":-1}`,
	}
	for _, in := range tests {
		var l Log
		if err := json.Unmarshal([]byte(in), &l); err == nil {
			t.Errorf("expected error for %s", in)
		}
	}
}
