// Package view keeps the cursor, the scroll offset and the selection of a
// document consistent with each other.
package view

import "github.com/JackWReid/tpad/internal/buffer"

// Direction is a plain cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Lines is the read-only view of the buffer needed for movement.
type Lines interface {
	LineCount() int
	LineLen(line int) int
}

// Cursor is the on-screen cursor. Row is relative to the viewport.
type Cursor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// View is the visible window into a buffer plus the cursor inside it.
// Row always stays within [0, WindowHeight-2].
type View struct {
	Cursor       Cursor
	ScrollOffset int
	WindowHeight int

	sel *Selection
}

func New(windowHeight int) *View {
	return &View{WindowHeight: windowHeight}
}

// VisibleRows is the window height minus the two border rows, never less
// than one.
func (v *View) VisibleRows() int {
	return max(v.WindowHeight-2, 1)
}

// Pos returns the absolute buffer position under the cursor.
func (v *View) Pos() buffer.Pos {
	return buffer.Pos{Line: v.ScrollOffset + v.Cursor.Row, Col: v.Cursor.Col}
}

// AdjustCursor places the cursor on an absolute position, scrolling just
// enough to reveal it. addOffset lands one column to the right, after an
// inserted character.
func (v *View) AdjustCursor(line, col int, addOffset bool) {
	visible := v.VisibleRows()
	if line < v.ScrollOffset {
		v.ScrollOffset = line
	} else if line > v.ScrollOffset+visible {
		v.ScrollOffset = line - visible + 1
	}
	v.Cursor.Row = line - v.ScrollOffset
	v.Cursor.Col = col
	if addOffset {
		v.Cursor.Col++
	}
}

// JumpTo moves the cursor to pos without an offset.
func (v *View) JumpTo(pos buffer.Pos) {
	v.AdjustCursor(pos.Line, pos.Col, false)
}

// SetWindowHeight records a new window height and re-places the cursor so
// the row bound still holds.
func (v *View) SetWindowHeight(h int) {
	if h == v.WindowHeight {
		return
	}
	pos := v.Pos()
	v.WindowHeight = h
	v.AdjustCursor(pos.Line, pos.Col, false)
}

// Move applies one plain cursor movement. Horizontal movement clamps to the
// current line; vertical movement scrolls by one row at the viewport edges
// and clamps the column to the destination line.
func (v *View) Move(dir Direction, lines Lines) {
	pos := v.Pos()
	switch dir {
	case Left:
		v.Cursor.Col = max(min(v.Cursor.Col, lines.LineLen(pos.Line))-1, 0)
	case Right:
		v.Cursor.Col = min(v.Cursor.Col+1, lines.LineLen(pos.Line))
	case Up:
		if pos.Line == 0 {
			return
		}
		if v.Cursor.Row == 0 {
			v.ScrollOffset--
		} else {
			v.Cursor.Row--
		}
		v.Cursor.Col = min(v.Cursor.Col, lines.LineLen(pos.Line-1))
	case Down:
		if pos.Line+1 >= lines.LineCount() {
			return
		}
		if v.Cursor.Row >= v.VisibleRows() {
			v.ScrollOffset++
		} else {
			v.Cursor.Row++
		}
		v.Cursor.Col = min(v.Cursor.Col, lines.LineLen(pos.Line+1))
	}
}

// Page moves up or down by n lines.
func (v *View) Page(dir Direction, n int, lines Lines) {
	for range n {
		v.Move(dir, lines)
	}
}

// Home moves to the start of the current line.
func (v *View) Home() {
	v.Cursor.Col = 0
}

// End moves past the last character of the current line.
func (v *View) End(lines Lines) {
	v.Cursor.Col = lines.LineLen(v.Pos().Line)
}

// Clamp pulls the cursor back inside the buffer after lines were removed
// behind its back.
func (v *View) Clamp(lines Lines) {
	pos := v.Pos()
	last := max(lines.LineCount()-1, 0)
	if pos.Line > last {
		pos.Line = last
	}
	pos.Col = min(pos.Col, lines.LineLen(pos.Line))
	v.JumpTo(pos)
}
