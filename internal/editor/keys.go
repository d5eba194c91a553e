package editor

import (
	"errors"
	"strings"

	"github.com/JackWReid/tpad/internal/config"
	"github.com/JackWReid/tpad/internal/document"
	"github.com/JackWReid/tpad/internal/history"
	"github.com/JackWReid/tpad/internal/terminal"
	"github.com/JackWReid/tpad/internal/view"
)

// wheelLines is how far one mouse wheel notch scrolls.
const wheelLines = 3

var arrows = map[terminal.KeyType]view.Direction{
	terminal.KeyUp:    view.Up,
	terminal.KeyDown:  view.Down,
	terminal.KeyLeft:  view.Left,
	terminal.KeyRight: view.Right,
}

func (a *App) handleEditorKey(key terminal.Key) {
	doc := a.ws.Active()

	if key.Type == terminal.KeyRune {
		a.handleRuneKey(doc, key)
		return
	}

	switch key.Type {
	case terminal.KeyEscape:
		a.focus = FocusCommand
	case terminal.KeyEnter:
		a.edit(doc.Enter())
	case terminal.KeyTab:
		a.edit(doc.TypeRune('\t'))
	case terminal.KeyBackspace:
		a.edit(doc.Backspace())
	case terminal.KeyDelete:
		a.edit(doc.DeleteForward())
	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight:
		a.arrow(doc, key)
	case terminal.KeyHome:
		doc.View.ClearSelection()
		doc.View.Home()
	case terminal.KeyEnd:
		doc.View.ClearSelection()
		doc.View.End(doc.Buffer)
	case terminal.KeyPgUp:
		doc.View.ClearSelection()
		doc.View.Page(view.Up, a.settings.PageSize, doc.Buffer)
	case terminal.KeyPgDn:
		doc.View.ClearSelection()
		doc.View.Page(view.Down, a.settings.PageSize, doc.Buffer)
	}
}

func (a *App) handleRuneKey(doc *document.Document, key terminal.Key) {
	switch key.Mod {
	case 0:
		a.edit(doc.TypeRune(key.Rune))
	case terminal.ModCtrl:
		switch key.Rune {
		case 's':
			a.save(doc, "")
		case 'q':
			a.requestExit()
		case 'z':
			a.undo(doc)
		case 'y':
			a.redo(doc)
		case 'c':
			a.copySelection(doc, false)
		case 'x':
			a.copySelection(doc, true)
		case 'v':
			a.pasteClipboard(doc)
		}
	case terminal.ModAlt:
		switch r := key.Rune; {
		case r == 'n':
			doc.NextMatch()
		case r == 'm':
			doc.PrevMatch()
		case r >= '1' && r <= '9':
			// Out-of-range tab numbers are ignored.
			a.ws.SetActive(int(r - '1'))
		}
	}
}

func (a *App) arrow(doc *document.Document, key terminal.Key) {
	dir := arrows[key.Type]
	switch key.Mod {
	case 0:
		doc.MoveCursor(dir)
	case terminal.ModShift:
		doc.Select(dir)
	case terminal.ModAlt:
		switch dir {
		case view.Left:
			a.ws.Prev()
		case view.Right:
			a.ws.Next()
		}
	case terminal.ModCtrl:
		switch dir {
		case view.Left:
			doc.View.ClearSelection()
			doc.View.JumpTo(prevWordStart(doc.Buffer, doc.Pos()))
		case view.Right:
			doc.View.ClearSelection()
			doc.View.JumpTo(nextWordStart(doc.Buffer, doc.Pos()))
		}
	}
}

// edit reports a failed edit. Edits only fail on positions the buffer
// rejects, which leaves the document unchanged.
func (a *App) edit(err error) {
	if err != nil {
		a.showError(err)
	}
}

func (a *App) undo(doc *document.Document) {
	err := doc.Undo()
	if errors.Is(err, history.ErrNothingToUndo) {
		a.statusBar.SetMessage("Already at oldest change")
		return
	}
	a.edit(err)
}

func (a *App) redo(doc *document.Document) {
	err := doc.Redo()
	if errors.Is(err, history.ErrNothingToRedo) {
		a.statusBar.SetMessage("Already at newest change")
		return
	}
	a.edit(err)
}

func (a *App) copySelection(doc *document.Document, cut bool) {
	text, ok := doc.SelectionText()
	if !ok {
		return
	}
	if err := a.clipboard.Write(text); err != nil {
		a.showError(err)
		return
	}
	if cut {
		a.edit(doc.DeleteSelection())
	}
}

func (a *App) pasteClipboard(doc *document.Document) {
	text, err := a.clipboard.Read()
	if err != nil {
		a.log.Warn("clipboard read failed", "err", err)
	}
	a.edit(doc.Paste(normalizeNewlines(text)))
}

// handlePaste inserts text that arrived as one terminal read.
func (a *App) handlePaste(text string) {
	text = normalizeNewlines(text)
	if a.focus == FocusCommand {
		for _, r := range strings.ReplaceAll(text, "\n", " ") {
			a.cmdline.Insert(r)
		}
		return
	}
	a.edit(a.ws.Active().Paste(text))
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func (a *App) handleMouse(mouse terminal.MouseEvent) {
	doc := a.ws.Active()
	switch mouse.Button {
	case terminal.MouseWheelUp:
		for range wheelLines {
			doc.MoveCursor(view.Up)
		}
	case terminal.MouseWheelDown:
		for range wheelLines {
			doc.MoveCursor(view.Down)
		}
	case terminal.MouseLeft:
		if !mouse.Press {
			return
		}
		row := mouse.Row - textTop
		if row < 0 || row >= TextRows(a.height) {
			return
		}
		line := doc.View.ScrollOffset + row
		if line >= doc.Buffer.LineCount() {
			line = doc.Buffer.LineCount() - 1
		}
		layout := a.renderer.Layout()
		x := mouse.Col - 1 - layout.Gutter + layout.LeftCells
		doc.View.ClearSelection()
		doc.AdjustCursor(line, bufferCol(doc.Buffer.Line(line), x), false)
		a.focus = FocusEditor
	}
}

func (a *App) handleCommandKey(key terminal.Key) {
	switch key.Type {
	case terminal.KeyEscape:
		a.focus = FocusEditor
	case terminal.KeyEnter:
		input := a.cmdline.String()
		a.cmdline.Reset()
		a.focus = FocusEditor
		a.executeCommand(input)
	case terminal.KeyBackspace:
		a.cmdline.Backspace()
	case terminal.KeyDelete:
		a.cmdline.Delete()
	case terminal.KeyLeft:
		a.cmdline.Left()
	case terminal.KeyRight:
		a.cmdline.Right()
	case terminal.KeyHome:
		a.cmdline.Home()
	case terminal.KeyEnd:
		a.cmdline.End()
	case terminal.KeyRune:
		switch {
		case key.Mod == 0:
			a.cmdline.Insert(key.Rune)
		case key.Is(terminal.ModCtrl, 'q'):
			a.requestExit()
		}
	}
}

func (a *App) handlePopupKey(key terminal.Key) {
	p := a.popup
	switch p.Kind {
	case PopupError:
		a.popup = nil
	case PopupSaveOnExit:
		switch {
		case key.Is(0, 'y'):
			a.popup = nil
			if a.save(p.doc, "") {
				a.requestExit()
			}
		case key.Is(0, 'n'):
			a.popup = nil
			a.exit()
		case key.Type == terminal.KeyEscape:
			a.popup = nil
		}
	case PopupThemeSelect:
		switch {
		case key.Type == terminal.KeyUp:
			p.picker.MoveUp()
		case key.Type == terminal.KeyDown:
			p.picker.MoveDown(len(p.themes))
		case key.Type == terminal.KeyEnter:
			a.popup = nil
			a.applyTheme(p.Selected())
		case key.Type == terminal.KeyEscape, key.Is(0, 'q'):
			a.popup = nil
		}
	}
}

func (a *App) applyTheme(path string) {
	theme, err := config.ApplyTheme(path, a.paths.Theme())
	if err != nil {
		a.showError(err)
		return
	}
	a.theme = theme
	a.log.Info("theme applied", "path", path)
	a.statusBar.SetMessage("Theme applied")
}
