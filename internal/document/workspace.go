package document

import (
	"errors"
	"path/filepath"
)

// ErrNoDocument is returned for a document index that does not exist.
var ErrNoDocument = errors.New("no such document")

// Workspace is the set of open documents and which one is active.
type Workspace struct {
	docs   []*Document
	active int
}

func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Open makes path the active document, loading it unless it is already
// open.
func (w *Workspace) Open(path string) (*Document, error) {
	if i := w.indexOf(path); i >= 0 {
		w.active = i
		return w.docs[i], nil
	}
	doc, err := Open(path)
	if err != nil {
		return nil, err
	}
	w.Add(doc)
	return doc, nil
}

// indexOf finds an open document by absolute path.
func (w *Workspace) indexOf(path string) int {
	if path == "" {
		return -1
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return -1
	}
	for i, d := range w.docs {
		if d.Path() == "" {
			continue
		}
		if existing, err := filepath.Abs(d.Path()); err == nil && existing == abs {
			return i
		}
	}
	return -1
}

// Add appends doc and makes it active.
func (w *Workspace) Add(doc *Document) int {
	w.docs = append(w.docs, doc)
	w.active = len(w.docs) - 1
	return w.active
}

// Active returns the active document, or nil when nothing is open.
func (w *Workspace) Active() *Document {
	if len(w.docs) == 0 {
		return nil
	}
	return w.docs[w.active]
}

func (w *Workspace) ActiveIndex() int { return w.active }

func (w *Workspace) SetActive(i int) error {
	if i < 0 || i >= len(w.docs) {
		return ErrNoDocument
	}
	w.active = i
	return nil
}

// Next and Prev move between tabs and stop at either end.
func (w *Workspace) Next() {
	if w.active < len(w.docs)-1 {
		w.active++
	}
}

func (w *Workspace) Prev() {
	if w.active > 0 {
		w.active--
	}
}

// Close removes the document at i. The tab to its left becomes active when
// the active document is closed.
func (w *Workspace) Close(i int) error {
	if i < 0 || i >= len(w.docs) {
		return ErrNoDocument
	}
	w.docs = append(w.docs[:i], w.docs[i+1:]...)
	if w.active >= i && w.active > 0 {
		w.active--
	}
	return nil
}

func (w *Workspace) Documents() []*Document { return w.docs }
func (w *Workspace) Len() int { return len(w.docs) }

// SetWindowHeight pushes the renderer's window height to every document.
func (w *Workspace) SetWindowHeight(h int) {
	for _, d := range w.docs {
		d.SetWindowHeight(h)
	}
}
