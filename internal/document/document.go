// Package document ties a line buffer to its undo log, viewport and search
// state. Every edit goes through a Document so that the buffer, the log and
// the cursor move together.
package document

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/JackWReid/tpad/internal/buffer"
	"github.com/JackWReid/tpad/internal/history"
	"github.com/JackWReid/tpad/internal/search"
	"github.com/JackWReid/tpad/internal/view"
)

// ErrNoFilename is returned when saving a document that was never named.
var ErrNoFilename = errors.New("no file name")

// Document is one open file.
type Document struct {
	Buffer  *buffer.Buffer
	History *history.Log
	View    *view.View
	Search  search.State

	// Perms is the file mode as shown in the status bar, empty for files
	// that do not exist yet.
	Perms string
}

// New creates an empty document that will be saved to path.
func New(path string) *Document {
	return &Document{
		Buffer:  buffer.New(path),
		History: history.NewLog(),
		View:    view.New(0),
	}
}

// FromLines creates a document around existing content.
func FromLines(path string, lines []string) *Document {
	d := New(path)
	d.Buffer = buffer.FromLines(path, lines)
	return d
}

// Open loads path. A file that does not exist yet opens as an empty
// document.
func Open(path string) (*Document, error) {
	d := New(path)
	if err := d.Buffer.Load(); err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	d.refreshPerms()
	return d, nil
}

// Resume rebuilds a document from saved content and undo history, so undo
// and redo carry on where they left off.
func Resume(path string, lines []string, log *history.Log, dirty bool) *Document {
	d := FromLines(path, lines)
	if log != nil {
		d.History = log
	}
	d.Buffer.Dirty = dirty
	d.refreshPerms()
	return d
}

// Path returns the file the document is bound to.
func (d *Document) Path() string { return d.Buffer.Filename }

// Name is the label shown on the document's tab.
func (d *Document) Name() string {
	if d.Buffer.Filename == "" {
		return "[No Name]"
	}
	return filepath.Base(d.Buffer.Filename)
}

func (d *Document) Dirty() bool { return d.Buffer.Dirty }

// Save writes the buffer to path, or to its current file when path is
// empty.
func (d *Document) Save(path string) error {
	if path == "" && d.Buffer.Filename == "" {
		return ErrNoFilename
	}
	if err := d.Buffer.Save(path); err != nil {
		return &IOError{Op: "save", Path: d.Buffer.Filename, Err: err}
	}
	d.refreshPerms()
	return nil
}

func (d *Document) refreshPerms() {
	d.Perms = ""
	if d.Buffer.Filename == "" {
		return
	}
	if info, err := os.Stat(d.Buffer.Filename); err == nil {
		d.Perms = info.Mode().Perm().String()
	}
}

// Pos is the absolute cursor position.
func (d *Document) Pos() buffer.Pos { return d.View.Pos() }

// AdjustCursor places the cursor on an absolute position.
func (d *Document) AdjustCursor(line, col int, addOffset bool) {
	d.View.AdjustCursor(line, col, addOffset)
}

// MoveCursor is plain movement; it drops any selection.
func (d *Document) MoveCursor(dir view.Direction) {
	d.View.ClearSelection()
	d.View.Move(dir, d.Buffer)
}

// SetWindowHeight is called by the renderer once per frame.
func (d *Document) SetWindowHeight(h int) {
	d.View.SetWindowHeight(h)
}

// Find returns every match of word in the document.
func (d *Document) Find(word string) []search.Match {
	return search.Find(d.Buffer.Lines, word)
}

// Highlight stores matches and jumps to the first one.
func (d *Document) Highlight(matches []search.Match) {
	d.Search.Highlight(matches)
	if m, ok := d.Search.Current(); ok {
		d.AdjustCursor(m.Line, m.EndCol, false)
	}
}

func (d *Document) Unhighlight() {
	d.Search.Unhighlight()
}

// NextMatch jumps to the end of the next match. It reports false when
// nothing is highlighted.
func (d *Document) NextMatch() bool {
	m, ok := d.Search.Next()
	if ok {
		d.AdjustCursor(m.Line, m.EndCol, false)
	}
	return ok
}

// PrevMatch jumps to the end of the previous match.
func (d *Document) PrevMatch() bool {
	m, ok := d.Search.Prev()
	if ok {
		d.AdjustCursor(m.Line, m.EndCol, false)
	}
	return ok
}
