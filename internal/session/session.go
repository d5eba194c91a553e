// Package session saves the open documents, with their undo history, so the
// next launch resumes where this one stopped.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JackWReid/tpad/internal/buffer"
	"github.com/JackWReid/tpad/internal/document"
	"github.com/JackWReid/tpad/internal/history"
)

// DocState is one saved document.
type DocState struct {
	Path         string       `json:"path"`
	Lines        []string     `json:"lines"`
	UndoLog      *history.Log `json:"undo_log"`
	Cursor       buffer.Pos   `json:"cursor"`
	ScrollOffset int          `json:"scroll_offset"`
	Dirty        bool         `json:"dirty"`
}

// Session is the blob written to session.json.
type Session struct {
	Documents []DocState `json:"documents"`
	Active    int        `json:"active"`
}

// Capture snapshots every document in ws.
func Capture(ws *document.Workspace) *Session {
	s := &Session{Active: ws.ActiveIndex()}
	for _, d := range ws.Documents() {
		s.Documents = append(s.Documents, DocState{
			Path:         d.Path(),
			Lines:        append([]string(nil), d.Buffer.Lines...),
			UndoLog:      d.History,
			Cursor:       d.Pos(),
			ScrollOffset: d.View.ScrollOffset,
			Dirty:        d.Dirty(),
		})
	}
	return s
}

// Save writes the session for ws to path, creating its directory.
func Save(path string, ws *document.Workspace) error {
	data, err := json.MarshalIndent(Capture(ws), "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a saved session. A missing file returns nil and no error.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", path, err)
	}
	return &s, nil
}

// Restore rebuilds a workspace from s. Documents come back with their saved
// content rather than what is on disk, so unsaved edits and the undo log
// stay consistent with each other.
//
// An active index outside the saved documents is reported as an error; the
// returned workspace is still usable, with the first document active.
func Restore(s *Session, windowHeight int) (*document.Workspace, error) {
	ws := document.NewWorkspace()
	if s == nil {
		return ws, nil
	}
	for _, st := range s.Documents {
		d := document.Resume(st.Path, st.Lines, st.UndoLog, st.Dirty)
		d.View.WindowHeight = windowHeight
		d.View.ScrollOffset = max(st.ScrollOffset, 0)
		d.View.AdjustCursor(st.Cursor.Line, st.Cursor.Col, false)
		d.View.Clamp(d.Buffer)
		ws.Add(d)
	}
	if ws.Len() == 0 {
		return ws, nil
	}
	if err := ws.SetActive(s.Active); err != nil {
		// Index 0 exists, so this cannot fail.
		_ = ws.SetActive(0)
		return ws, fmt.Errorf("restore session: active document %d: %w", s.Active, err)
	}
	return ws, nil
}
