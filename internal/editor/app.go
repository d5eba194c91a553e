// Package editor is the interactive shell around the document model: the
// event loop, key bindings, command execution and drawing.
package editor

import (
	"io"
	"log/slog"

	"github.com/JackWReid/tpad/internal/config"
	"github.com/JackWReid/tpad/internal/document"
	"github.com/JackWReid/tpad/internal/session"
	"github.com/JackWReid/tpad/internal/terminal"
)

// Focus is the part of the screen that receives keys.
type Focus int

const (
	FocusEditor Focus = iota
	FocusCommand
)

// Options configure a new App.
type Options struct {
	Workspace *document.Workspace
	Settings  config.Settings
	Theme     config.Theme
	Paths     config.Paths
	Logger    *slog.Logger
	Clipboard Clipboard
}

// App is the top-level editor state.
type App struct {
	ws        *document.Workspace
	settings  config.Settings
	theme     config.Theme
	paths     config.Paths
	log       *slog.Logger
	clipboard Clipboard

	renderer  *Renderer
	statusBar *StatusBar
	cmdline   *CommandLine
	popup     *Popup
	focus     Focus

	out           io.Writer
	width, height int
	quit          bool
}

func NewApp(opts Options) *App {
	a := &App{
		ws:        opts.Workspace,
		settings:  opts.Settings,
		theme:     opts.Theme,
		paths:     opts.Paths,
		log:       opts.Logger,
		clipboard: opts.Clipboard,
		renderer:  NewRenderer(),
		statusBar: NewStatusBar(),
		cmdline:   &CommandLine{},
		out:       io.Discard,
		width:     80,
		height:    24,
	}
	if a.ws == nil {
		a.ws = document.NewWorkspace()
	}
	if a.ws.Len() == 0 {
		a.ws.Add(document.New(""))
	}
	if a.log == nil {
		a.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if a.clipboard == nil {
		a.clipboard = NewSystemClipboard()
	}
	a.ws.SetWindowHeight(WindowHeight(a.height))
	return a
}

// Workspace returns the open documents.
func (a *App) Workspace() *document.Workspace { return a.ws }

// Quit reports whether the editor has been asked to exit.
func (a *App) Quit() bool { return a.quit }

func (a *App) Run() error {
	t, err := terminal.NewTerminal()
	if err != nil {
		return err
	}
	defer t.Restore()
	a.out = t

	a.resize(t.Width(), t.Height())
	a.log.Info("editor started", "documents", a.ws.Len(), "width", a.width, "height", a.height)

	// Initial render.
	a.render()

	// Main event loop.
	for !a.quit {
		// Check for resize signal (non-blocking).
		select {
		case <-t.SigwinchChan():
			t.Resize()
			a.resize(t.Width(), t.Height())
			a.render()
			continue
		default:
		}

		event, err := t.ReadEvent()
		if err != nil {
			return err
		}

		a.HandleEvent(event)
		if !a.quit {
			a.render()
		}
	}

	a.log.Info("editor stopped")
	return nil
}

func (a *App) resize(w, h int) {
	a.width, a.height = w, h
	a.ws.SetWindowHeight(WindowHeight(h))
}

func (a *App) frame() Frame {
	return Frame{
		Width:       a.width,
		Height:      a.height,
		Docs:        a.ws.Documents(),
		Active:      a.ws.ActiveIndex(),
		Theme:       a.theme,
		LineNumbers: a.settings.LineNumbers,
		Focus:       a.focus,
		Command:     a.cmdline,
		Status:      a.statusBar,
		Popup:       a.popup,
	}
}

func (a *App) render() {
	// Documents opened since the last frame start with no height.
	a.ws.SetWindowHeight(WindowHeight(a.height))
	if _, err := io.WriteString(a.out, a.renderer.Render(a.frame())); err != nil {
		a.log.Warn("render failed", "err", err)
	}
}

// HandleEvent applies one input event.
func (a *App) HandleEvent(event terminal.InputEvent) {
	// Clear any temporary status message on input.
	a.statusBar.ClearMessage()

	// A popup takes every key until it is dismissed.
	if a.popup != nil {
		if event.Type == terminal.EventKey {
			a.handlePopupKey(event.Key)
		}
		return
	}

	switch event.Type {
	case terminal.EventMouse:
		a.handleMouse(event.Mouse)
	case terminal.EventPaste:
		a.handlePaste(event.Text)
	case terminal.EventKey:
		if a.focus == FocusCommand {
			a.handleCommandKey(event.Key)
		} else {
			a.handleEditorKey(event.Key)
		}
	}
}

func (a *App) showError(err error) {
	a.log.Error("operation failed", "err", err)
	a.popup = errorPopup(err.Error())
}

// closeActive closes the active document; closing the last one exits.
func (a *App) closeActive() {
	doc := a.ws.Active()
	if err := a.ws.Close(a.ws.ActiveIndex()); err != nil {
		a.showError(err)
		return
	}
	a.log.Info("closed document", "path", doc.Path())
	if a.ws.Len() == 0 {
		a.exit()
		if !a.quit {
			a.ws.Add(document.New(""))
		}
	}
}

// requestExit asks about the first unsaved document, if any, and exits
// otherwise.
func (a *App) requestExit() {
	if doc := a.ws.Active(); doc != nil && doc.Dirty() {
		a.popup = saveOnExitPopup(doc)
		return
	}
	for _, doc := range a.ws.Documents() {
		if doc.Dirty() {
			a.popup = saveOnExitPopup(doc)
			return
		}
	}
	a.exit()
}

// exit stores the session, when enabled, and stops the event loop. A
// session that cannot be written keeps the editor open.
func (a *App) exit() {
	if a.settings.RestoreSession {
		if err := session.Save(a.paths.Session(), a.ws); err != nil {
			a.showError(err)
			return
		}
		a.log.Info("session saved", "path", a.paths.Session(), "documents", a.ws.Len())
	}
	a.quit = true
}

// ShowError raises an error popup, for problems found before the first
// frame.
func (a *App) ShowError(err error) {
	a.showError(err)
}
