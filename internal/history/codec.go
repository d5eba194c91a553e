package history

import (
	"encoding/json"
	"fmt"
)

type envelope struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type wireLog struct {
	Ops    []envelope `json:"ops"`
	Cursor int        `json:"cursor"`
}

// MarshalJSON encodes every entry, including its applied flag, tagged by
// kind, along with the cursor.
func (l *Log) MarshalJSON() ([]byte, error) {
	w := wireLog{Ops: make([]envelope, 0, len(l.ops)), Cursor: l.cursor}
	for _, op := range l.ops {
		data, err := json.Marshal(op)
		if err != nil {
			return nil, err
		}
		w.Ops = append(w.Ops, envelope{Kind: op.Kind().String(), Data: data})
	}
	return json.Marshal(w)
}

func (l *Log) UnmarshalJSON(data []byte) error {
	var w wireLog
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	ops := make([]Op, 0, len(w.Ops))
	for i, e := range w.Ops {
		op, err := decodeOp(e)
		if err != nil {
			return fmt.Errorf("history entry %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	if w.Cursor < 0 || w.Cursor > len(ops) {
		return fmt.Errorf("history cursor %d outside [0, %d]", w.Cursor, len(ops))
	}
	l.ops = ops
	l.cursor = w.Cursor
	return nil
}

func decodeOp(e envelope) (Op, error) {
	var op Op
	switch e.Kind {
	case KindInsertChar.String():
		op = &InsertChar{}
	case KindDeleteChar.String():
		op = &DeleteChar{}
	case KindSplitLine.String():
		op = &SplitLine{}
	case KindMergeLines.String():
		op = &MergeLines{}
	case KindDeleteSelection.String():
		op = &DeleteSelection{}
	case KindInsertSelection.String():
		op = &InsertSelection{}
	default:
		return nil, fmt.Errorf("%w %q", errUnknownOp, e.Kind)
	}
	if err := json.Unmarshal(e.Data, op); err != nil {
		return nil, err
	}
	return op, nil
}
