package history

import (
	"fmt"

	"github.com/JackWReid/tpad/internal/buffer"
)

// Kind describes the kind of edit operation recorded in the log.
type Kind int

const (
	KindInsertChar      Kind = iota // Inserted a character
	KindDeleteChar                  // Deleted a character
	KindSplitLine                   // Broke a line in two (Enter)
	KindMergeLines                  // Joined a line with the next one
	KindDeleteSelection             // Deleted a (possibly multi-line) range
	KindInsertSelection             // Inserted (possibly multi-line) text
)

var kindNames = [...]string{
	KindInsertChar:      "insert_char",
	KindDeleteChar:      "delete_char",
	KindSplitLine:       "split_line",
	KindMergeLines:      "merge_lines",
	KindDeleteSelection: "delete_selection",
	KindInsertSelection: "insert_selection",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Op is one reversible edit. The set of implementations is closed; the log
// dispatches on the concrete type.
type Op interface {
	Kind() Kind
	applied() bool
	setApplied(bool)
}

// InsertChar records a character typed at (Line, Col). Grown counts the
// empty lines the buffer was extended by when Line was past its end.
type InsertChar struct {
	Line    int  `json:"line"`
	Col     int  `json:"col"`
	Ch      rune `json:"ch"`
	Grown   int  `json:"grown,omitempty"`
	Applied bool `json:"applied"`
}

// DeleteChar records the removal of the character that sat at (Line, Col).
// Ch is kept so the deletion can be reversed.
type DeleteChar struct {
	Line    int  `json:"line"`
	Col     int  `json:"col"`
	Ch      rune `json:"ch"`
	Applied bool `json:"applied"`
}

// SplitLine records FirstLine being broken at SplitIndex, producing
// SecondLine.
type SplitLine struct {
	FirstLine  int  `json:"first_line"`
	SplitIndex int  `json:"split_index"`
	SecondLine int  `json:"second_line"`
	Applied    bool `json:"applied"`
}

// MergeLines records the line after MergedLine being appended to it.
// MergePoint is the length of MergedLine before the merge.
type MergeLines struct {
	MergedLine int  `json:"merged_line"`
	MergePoint int  `json:"merge_point"`
	Applied    bool `json:"applied"`
}

// DeleteSelection records the removal of [Start, Stop). Text is exactly what
// buffer.DeleteRange returned.
type DeleteSelection struct {
	Start   buffer.Pos `json:"start"`
	Stop    buffer.Pos `json:"stop"`
	Text    string     `json:"text"`
	Applied bool       `json:"applied"`
}

// InsertSelection records Text inserted at Start; Stop is where it ended.
type InsertSelection struct {
	Start   buffer.Pos `json:"start"`
	Stop    buffer.Pos `json:"stop"`
	Text    string     `json:"text"`
	Applied bool       `json:"applied"`
}

func (*InsertChar) Kind() Kind { return KindInsertChar }
func (*DeleteChar) Kind() Kind { return KindDeleteChar }
func (*SplitLine) Kind() Kind { return KindSplitLine }
func (*MergeLines) Kind() Kind { return KindMergeLines }
func (*DeleteSelection) Kind() Kind { return KindDeleteSelection }
func (*InsertSelection) Kind() Kind { return KindInsertSelection }

func (o *InsertChar) applied() bool { return o.Applied }
func (o *DeleteChar) applied() bool { return o.Applied }
func (o *SplitLine) applied() bool { return o.Applied }
func (o *MergeLines) applied() bool { return o.Applied }
func (o *DeleteSelection) applied() bool { return o.Applied }
func (o *InsertSelection) applied() bool { return o.Applied }

func (o *InsertChar) setApplied(v bool) { o.Applied = v }
func (o *DeleteChar) setApplied(v bool) { o.Applied = v }
func (o *SplitLine) setApplied(v bool) { o.Applied = v }
func (o *MergeLines) setApplied(v bool) { o.Applied = v }
func (o *DeleteSelection) setApplied(v bool) { o.Applied = v }
func (o *InsertSelection) setApplied(v bool) { o.Applied = v }

// Target is the set of buffer primitives the log replays operations through.
// *buffer.Buffer satisfies it.
type Target interface {
	LineLen(line int) int
	InsertChar(line, col int, ch rune) error
	DeleteChar(line, col int) (rune, error)
	SplitLine(line, index int) error
	MergeLines(line, next int) error
	DeleteRange(start, stop buffer.Pos) (string, error)
	RemoveRange(start, stop buffer.Pos) (string, error)
	InsertRange(start buffer.Pos, text string) (buffer.Pos, error)
}

var _ Target = (*buffer.Buffer)(nil)

// Landing is where the cursor belongs after an undo or redo, in absolute
// buffer coordinates. AddOffset places the cursor one column to the right,
// after an inserted character.
type Landing struct {
	Line      int
	Col       int
	AddOffset bool
}

// inverse applies the reverse of op to t.
func inverse(op Op, t Target) (Landing, error) {
	switch o := op.(type) {
	case *InsertChar:
		if o.Grown > o.Line {
			return Landing{}, fmt.Errorf("insert char at line %d cannot have grown %d lines", o.Line, o.Grown)
		}
		if _, err := t.DeleteChar(o.Line, o.Col+1); err != nil {
			return Landing{}, err
		}
		if o.Grown > 0 {
			// The padding lines are empty again; join them back onto the
			// last line that existed before the insert.
			last := o.Line - o.Grown
			from := buffer.Pos{Line: last, Col: t.LineLen(last)}
			if _, err := t.RemoveRange(from, buffer.Pos{Line: o.Line}); err != nil {
				return Landing{}, err
			}
			return Landing{Line: last, Col: from.Col}, nil
		}
		return Landing{Line: o.Line, Col: o.Col}, nil

	case *DeleteChar:
		if err := t.InsertChar(o.Line, o.Col, o.Ch); err != nil {
			return Landing{}, err
		}
		return Landing{Line: o.Line, Col: o.Col, AddOffset: true}, nil

	case *SplitLine:
		if err := t.MergeLines(o.FirstLine, o.SecondLine); err != nil {
			return Landing{}, err
		}
		return Landing{Line: o.FirstLine, Col: o.SplitIndex}, nil

	case *MergeLines:
		if err := t.SplitLine(o.MergedLine, o.MergePoint); err != nil {
			return Landing{}, err
		}
		return Landing{Line: o.MergedLine, Col: o.MergePoint}, nil

	case *DeleteSelection:
		end, err := t.InsertRange(o.Start, o.Text)
		if err != nil {
			return Landing{}, err
		}
		return Landing{Line: end.Line, Col: end.Col}, nil

	case *InsertSelection:
		if _, err := t.RemoveRange(o.Start, o.Stop); err != nil {
			return Landing{}, err
		}
		return Landing{Line: o.Start.Line, Col: o.Start.Col}, nil
	}
	return Landing{}, errUnknownOp
}

// forward re-applies op to t.
func forward(op Op, t Target) (Landing, error) {
	switch o := op.(type) {
	case *InsertChar:
		if err := t.InsertChar(o.Line, o.Col, o.Ch); err != nil {
			return Landing{}, err
		}
		return Landing{Line: o.Line, Col: o.Col, AddOffset: true}, nil

	case *DeleteChar:
		if _, err := t.DeleteChar(o.Line, o.Col+1); err != nil {
			return Landing{}, err
		}
		return Landing{Line: o.Line, Col: o.Col}, nil

	case *SplitLine:
		if err := t.SplitLine(o.FirstLine, o.SplitIndex); err != nil {
			return Landing{}, err
		}
		return Landing{Line: o.SecondLine, Col: 0}, nil

	case *MergeLines:
		if err := t.MergeLines(o.MergedLine, o.MergedLine+1); err != nil {
			return Landing{}, err
		}
		return Landing{Line: o.MergedLine, Col: o.MergePoint}, nil

	case *DeleteSelection:
		if _, err := t.DeleteRange(o.Start, o.Stop); err != nil {
			return Landing{}, err
		}
		return Landing{Line: o.Start.Line, Col: o.Start.Col}, nil

	case *InsertSelection:
		end, err := t.InsertRange(o.Start, o.Text)
		if err != nil {
			return Landing{}, err
		}
		return Landing{Line: end.Line, Col: end.Col}, nil
	}
	return Landing{}, errUnknownOp
}
