package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a line or column index that is invalid for the
	// current shape of the buffer.
	ErrOutOfRange = errors.New("position out of range")

	// ErrNewline is returned when a newline is passed to InsertChar. Line
	// breaks go through SplitLine or InsertRange.
	ErrNewline = errors.New("newline must be inserted with SplitLine")
)

// RangeError records the operation and position that failed validation.
type RangeError struct {
	Op   string
	Line int
	Col  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s at %d:%d: %v", e.Op, e.Line, e.Col, ErrOutOfRange)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func outOfRange(op string, line, col int) error {
	return &RangeError{Op: op, Line: line, Col: col}
}
