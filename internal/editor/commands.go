package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JackWReid/tpad/internal/command"
	"github.com/JackWReid/tpad/internal/config"
	"github.com/JackWReid/tpad/internal/document"
	"github.com/JackWReid/tpad/internal/search"
)

// executeCommand runs one line typed on the command row.
func (a *App) executeCommand(input string) {
	cmd, err := command.Parse(input)
	if err != nil {
		a.showError(err)
		return
	}
	if cmd == nil {
		return
	}
	a.log.Debug("command", "input", input)

	doc := a.ws.Active()
	switch cmd.Kind {
	case command.Open:
		a.open(cmd.Arg)
	case command.Find:
		matches := doc.Find(cmd.Arg)
		doc.Highlight(matches)
		if len(matches) == 0 {
			a.statusBar.SetMessage("Pattern not found: " + cmd.Arg)
		}
	case command.NoHighlight:
		doc.Unhighlight()
	case command.Count:
		n := search.CountWord(doc.Buffer.Lines, cmd.Arg)
		a.statusBar.SetMessage(fmt.Sprintf("%q: %d", cmd.Arg, n))
	case command.List:
		names := make([]string, a.ws.Len())
		for i, d := range a.ws.Documents() {
			names[i] = tabLabel(i, d)
		}
		a.statusBar.SetMessage(strings.Join(names, " "))
	case command.ClearUndo:
		doc.ClearHistory()
		a.statusBar.SetMessage("Undo history cleared")
	case command.Close:
		if doc.Dirty() {
			a.statusBar.SetMessage("No write since last change (add ! to override)")
			return
		}
		a.closeActive()
	case command.ForceClose:
		a.closeActive()
	case command.Write:
		a.save(doc, cmd.Arg)
	case command.WriteClose:
		if a.save(doc, cmd.Arg) {
			a.closeActive()
		}
	case command.Exit:
		a.requestExit()
	case command.Theme:
		a.open(a.paths.Theme())
	case command.SetTheme:
		a.showThemes()
	case command.Change:
		if err := a.ws.SetActive(cmd.N); err != nil {
			a.showError(fmt.Errorf("b %d: %w", cmd.N+1, err))
		}
	}
}

func (a *App) open(path string) {
	doc, err := a.ws.Open(path)
	if err != nil {
		a.showError(err)
		return
	}
	doc.SetWindowHeight(WindowHeight(a.height))
	a.log.Info("opened document", "path", path, "lines", doc.Buffer.LineCount())
}

// save writes doc and reports whether it succeeded. An unnamed document
// puts "w " on the command row so the user can type a name.
func (a *App) save(doc *document.Document, path string) bool {
	if err := doc.Save(path); err != nil {
		if errors.Is(err, document.ErrNoFilename) {
			a.focus = FocusCommand
			a.cmdline.Set("w ")
			a.statusBar.SetMessage("No file name")
			return false
		}
		a.showError(err)
		return false
	}
	a.log.Info("saved document", "path", doc.Path(), "bytes", doc.Buffer.Size())
	a.statusBar.SetMessage(fmt.Sprintf("%q written", doc.Name()))
	return true
}

func (a *App) showThemes() {
	themes, err := config.ListThemes(a.paths.Themes())
	if err != nil {
		a.showError(err)
		return
	}
	if len(themes) == 0 {
		a.showError(fmt.Errorf("no themes in %s", a.paths.Themes()))
		return
	}
	a.popup = themePopup(themes)
}
