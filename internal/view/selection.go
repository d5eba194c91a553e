package view

import "github.com/JackWReid/tpad/internal/buffer"

// Selection is an anchor/active pair in absolute coordinates. The anchor may
// come after the active point; consumers normalize.
type Selection struct {
	Anchor buffer.Pos
	Active buffer.Pos
}

// StartSelection anchors a selection at pos. An in-progress selection is
// left alone.
func (v *View) StartSelection(pos buffer.Pos) {
	if v.sel != nil {
		return
	}
	v.sel = &Selection{Anchor: pos, Active: pos}
}

// UpdateSelectionEnd moves the active end; the anchor stays put.
func (v *View) UpdateSelectionEnd(pos buffer.Pos) {
	if v.sel == nil {
		return
	}
	v.sel.Active = pos
}

// Selection returns the selected range in document order. ok is false when
// nothing is selected or the range is empty.
func (v *View) Selection() (start, stop buffer.Pos, ok bool) {
	if v.sel == nil {
		return buffer.Pos{}, buffer.Pos{}, false
	}
	start, stop = buffer.Normalize(v.sel.Anchor, v.sel.Active)
	return start, stop, start != stop
}

func (v *View) HasSelection() bool {
	_, _, ok := v.Selection()
	return ok
}

func (v *View) ClearSelection() {
	v.sel = nil
}

// Contains reports whether the character at (line, col) is selected.
func (v *View) Contains(line, col int) bool {
	start, stop, ok := v.Selection()
	if !ok {
		return false
	}
	p := buffer.Pos{Line: line, Col: col}
	return buffer.ComparePos(p, start) >= 0 && buffer.ComparePos(p, stop) < 0
}
