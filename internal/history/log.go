package history

import (
	"errors"
	"fmt"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")

	errUnknownOp = errors.New("unknown operation")
)

// Log is a linear undo/redo history. Entries below the cursor have been
// applied and can be undone; entries at or above it have been undone and can
// be redone.
type Log struct {
	ops    []Op
	cursor int
}

func NewLog() *Log {
	return &Log{}
}

// Push records an edit that has just been performed. Any redoable entries
// are discarded.
func (l *Log) Push(op Op) {
	l.ops = l.ops[:l.cursor]
	op.setApplied(true)
	l.ops = append(l.ops, op)
	l.cursor = len(l.ops)
}

// Undo reverses the entry just below the cursor and reports where the
// cursor should land. ok is false when the entry was already undone; the
// log steps past it without touching the buffer.
func (l *Log) Undo(t Target) (Landing, bool, error) {
	if l.cursor == 0 {
		return Landing{}, false, ErrNothingToUndo
	}
	op := l.ops[l.cursor-1]
	if !op.applied() {
		l.cursor--
		return Landing{}, false, nil
	}
	land, err := inverse(op, t)
	if err != nil {
		return Landing{}, false, fmt.Errorf("undo %s: %w", op.Kind(), err)
	}
	op.setApplied(false)
	l.cursor--
	return land, true, nil
}

// Redo re-applies the entry at the cursor. ok is false when the entry was
// already applied.
func (l *Log) Redo(t Target) (Landing, bool, error) {
	if l.cursor == len(l.ops) {
		return Landing{}, false, ErrNothingToRedo
	}
	op := l.ops[l.cursor]
	if op.applied() {
		l.cursor++
		return Landing{}, false, nil
	}
	land, err := forward(op, t)
	if err != nil {
		return Landing{}, false, fmt.Errorf("redo %s: %w", op.Kind(), err)
	}
	op.setApplied(true)
	l.cursor++
	return land, true, nil
}

// Clear forgets the whole history. Buffer content is untouched.
func (l *Log) Clear() {
	l.ops = nil
	l.cursor = 0
}

func (l *Log) Len() int { return len(l.ops) }
func (l *Log) Cursor() int { return l.cursor }
func (l *Log) CanUndo() bool { return l.cursor > 0 }
func (l *Log) CanRedo() bool { return l.cursor < len(l.ops) }

// Ops returns the recorded entries. The slice is shared with the log.
func (l *Log) Ops() []Op { return l.ops }
