package document

import (
	"github.com/JackWReid/tpad/internal/buffer"
	"github.com/JackWReid/tpad/internal/history"
)

// The methods in this file take absolute coordinates. Each one mutates the
// buffer, records the edit in the log and repositions the cursor. A rejected
// edit changes nothing.

// InsertChar inserts ch at (line, col). A line past the end extends the
// buffer, and the log remembers by how much so undo can shrink it again.
func (d *Document) InsertChar(line, col int, ch rune) error {
	grown := max(line-d.Buffer.LineCount()+1, 0)
	if err := d.Buffer.InsertChar(line, col, ch); err != nil {
		return err
	}
	d.History.Push(&history.InsertChar{Line: line, Col: col, Ch: ch, Grown: grown})
	d.AdjustCursor(line, col, true)
	return nil
}

// DeleteChar removes the character before col.
func (d *Document) DeleteChar(line, col int) error {
	ch, err := d.Buffer.DeleteChar(line, col)
	if err != nil {
		return err
	}
	d.History.Push(&history.DeleteChar{Line: line, Col: col - 1, Ch: ch})
	d.AdjustCursor(line, col-1, false)
	return nil
}

func (d *Document) SplitLine(line, index int) error {
	if err := d.Buffer.SplitLine(line, index); err != nil {
		return err
	}
	d.History.Push(&history.SplitLine{FirstLine: line, SplitIndex: index, SecondLine: line + 1})
	d.AdjustCursor(line+1, 0, false)
	return nil
}

func (d *Document) MergeLines(line, next int) error {
	point := d.Buffer.LineLen(line)
	if err := d.Buffer.MergeLines(line, next); err != nil {
		return err
	}
	d.History.Push(&history.MergeLines{MergedLine: line, MergePoint: point})
	d.AdjustCursor(line, point, false)
	return nil
}

// DeleteRange removes [start, stop) and returns the removed text.
func (d *Document) DeleteRange(start, stop buffer.Pos) (string, error) {
	start, stop = buffer.Normalize(start, stop)
	text, err := d.Buffer.DeleteRange(start, stop)
	if err != nil {
		return "", err
	}
	if text != "" {
		d.History.Push(&history.DeleteSelection{Start: start, Stop: stop, Text: text})
	}
	d.AdjustCursor(start.Line, start.Col, false)
	return text, nil
}

// InsertRange inserts text at start and returns where it ends.
func (d *Document) InsertRange(start buffer.Pos, text string) (buffer.Pos, error) {
	end, err := d.Buffer.InsertRange(start, text)
	if err != nil {
		return start, err
	}
	if text != "" {
		d.History.Push(&history.InsertSelection{Start: start, Stop: end, Text: text})
	}
	d.AdjustCursor(end.Line, end.Col, false)
	return end, nil
}

// Undo reverses the most recent edit. It returns history.ErrNothingToUndo at
// the start of the log.
func (d *Document) Undo() error {
	land, ok, err := d.History.Undo(d.Buffer)
	if err != nil {
		return err
	}
	d.View.ClearSelection()
	if ok {
		d.AdjustCursor(land.Line, land.Col, land.AddOffset)
	}
	return nil
}

// Redo re-applies the most recently undone edit. It returns
// history.ErrNothingToRedo at the end of the log.
func (d *Document) Redo() error {
	land, ok, err := d.History.Redo(d.Buffer)
	if err != nil {
		return err
	}
	d.View.ClearSelection()
	if ok {
		d.AdjustCursor(land.Line, land.Col, land.AddOffset)
	}
	return nil
}

// ClearHistory forgets every recorded edit; content is untouched.
func (d *Document) ClearHistory() {
	d.History.Clear()
}
