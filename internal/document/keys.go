package document

import "github.com/JackWReid/tpad/internal/view"

// TypeRune inserts ch at the cursor, replacing the selection if there is one.
func (d *Document) TypeRune(ch rune) error {
	if err := d.DeleteSelection(); err != nil {
		return err
	}
	pos := d.Pos()
	return d.InsertChar(pos.Line, pos.Col, ch)
}

// Backspace deletes the selection, the character before the cursor, or the
// line break before the cursor.
func (d *Document) Backspace() error {
	if d.View.HasSelection() {
		return d.DeleteSelection()
	}
	pos := d.Pos()
	if pos.Col > 0 {
		return d.DeleteChar(pos.Line, pos.Col)
	}
	if pos.Line == 0 {
		return nil
	}
	return d.MergeLines(pos.Line-1, pos.Line)
}

// DeleteForward deletes the selection, the character under the cursor, or
// the line break at the end of the line.
func (d *Document) DeleteForward() error {
	if d.View.HasSelection() {
		return d.DeleteSelection()
	}
	pos := d.Pos()
	if pos.Col < d.Buffer.LineLen(pos.Line) {
		return d.DeleteChar(pos.Line, pos.Col+1)
	}
	if pos.Line+1 >= d.Buffer.LineCount() {
		return nil
	}
	return d.MergeLines(pos.Line, pos.Line+1)
}

// Enter breaks the line at the cursor.
func (d *Document) Enter() error {
	if err := d.DeleteSelection(); err != nil {
		return err
	}
	pos := d.Pos()
	return d.SplitLine(pos.Line, pos.Col)
}

// DeleteSelection removes the selected text, if any, and drops the
// selection.
func (d *Document) DeleteSelection() error {
	start, stop, ok := d.View.Selection()
	d.View.ClearSelection()
	if !ok {
		return nil
	}
	_, err := d.DeleteRange(start, stop)
	return err
}

// Paste inserts text at the cursor, replacing the selection.
func (d *Document) Paste(text string) error {
	if text == "" {
		return nil
	}
	if err := d.DeleteSelection(); err != nil {
		return err
	}
	_, err := d.InsertRange(d.Pos(), text)
	return err
}

// SelectionText returns the selected text without modifying anything.
func (d *Document) SelectionText() (string, bool) {
	start, stop, ok := d.View.Selection()
	if !ok {
		return "", false
	}
	text, err := d.Buffer.Text(start, stop)
	if err != nil {
		return "", false
	}
	return text, true
}

// Select extends the selection by one movement, anchoring it at the cursor
// first if nothing is selected.
func (d *Document) Select(dir view.Direction) {
	d.View.StartSelection(d.Pos())
	d.View.Move(dir, d.Buffer)
	d.View.UpdateSelectionEnd(d.Pos())
}
