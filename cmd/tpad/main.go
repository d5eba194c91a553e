package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/JackWReid/tpad/internal/config"
	"github.com/JackWReid/tpad/internal/document"
	"github.com/JackWReid/tpad/internal/editor"
	"github.com/JackWReid/tpad/internal/session"
)

var Version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "tpad: %v\n", err)
		os.Exit(1)
	}
}

func run(filenames []string) error {
	paths := config.DefaultPaths()

	settings, err := config.LoadSettings(paths.Settings())
	var parseErr *config.ParseError
	if err != nil && !errors.As(err, &parseErr) {
		return err
	}

	logger, closer, err := settings.Logger()
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Info("starting tpad", "version", Version, "config", paths.Dir)

	var startup []error
	if parseErr != nil {
		logger.Warn("using default settings", "err", parseErr)
		startup = append(startup, parseErr)
	}

	theme, err := config.LoadTheme(paths.Theme())
	if err != nil {
		logger.Warn("theme file not written", "path", paths.Theme(), "err", err)
	}

	ws, errs := openWorkspace(filenames, settings, paths, logger)
	startup = append(startup, errs...)

	app := editor.NewApp(editor.Options{
		Workspace: ws,
		Settings:  settings,
		Theme:     theme,
		Paths:     paths,
		Logger:    logger,
		Clipboard: editor.NewSystemClipboard(),
	})
	if len(startup) > 0 {
		app.ShowError(errors.Join(startup...))
	}
	return app.Run()
}

// openWorkspace restores the last session, when enabled, and opens the
// named files after it. Files that cannot be opened are reported rather
// than aborting startup.
func openWorkspace(filenames []string, settings config.Settings, paths config.Paths, logger *slog.Logger) (*document.Workspace, []error) {
	var errs []error
	ws := document.NewWorkspace()

	if settings.RestoreSession {
		s, err := session.Load(paths.Session())
		if err != nil {
			logger.Warn("session not restored", "err", err)
			errs = append(errs, err)
		} else if s != nil {
			height := 24
			if _, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				height = h
			}
			ws, err = session.Restore(s, editor.WindowHeight(height))
			if err != nil {
				logger.Warn("session restored with errors", "err", err)
				errs = append(errs, err)
			}
			logger.Info("session restored", "documents", ws.Len())
		}
	}

	for _, f := range filenames {
		if _, err := ws.Open(f); err != nil {
			logger.Warn("open failed", "path", f, "err", err)
			errs = append(errs, err)
		}
	}
	return ws, errs
}
