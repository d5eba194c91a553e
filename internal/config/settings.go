package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Settings are the user's editor preferences from config.toml.
type Settings struct {
	RestoreSession bool   `toml:"restore_session"`
	LineNumbers    bool   `toml:"line_numbers"`
	LogFile        string `toml:"log_file"`
	LogLevel       string `toml:"log_level"`
	PageSize       int    `toml:"page_size"`
}

func DefaultSettings() Settings {
	return Settings{
		RestoreSession: true,
		LineNumbers:    true,
		LogLevel:       "info",
		PageSize:       20,
	}
}

// ParseError reports a config file that exists but is not valid TOML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadSettings reads path over the defaults. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), &ParseError{Path: path, Err: err}
	}
	if s.PageSize <= 0 {
		s.PageSize = DefaultSettings().PageSize
	}
	return s, nil
}

// Level maps LogLevel onto a slog level; unknown names mean info.
func (s Settings) Level() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger opens the log file named in the settings. Without one, log output
// is discarded: the terminal belongs to the editor. The returned closer must
// be closed on exit.
func (s Settings) Logger() (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: s.Level()}
	if s.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}
