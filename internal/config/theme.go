package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Theme holds the colours of each part of the screen as #rrggbb strings.
type Theme struct {
	Status  StatusStyle  `toml:"status"`
	Tabs    TabsStyle    `toml:"tabs"`
	Editor  EditorStyle  `toml:"editor"`
	Command CommandStyle `toml:"command"`
	Popup   PopupStyle   `toml:"popup"`
}

type StatusStyle struct {
	Foreground string `toml:"foreground"`
}

type TabsStyle struct {
	ActiveBG   string `toml:"active_bg"`
	ActiveFG   string `toml:"active_fg"`
	InactiveBG string `toml:"inactive_bg"`
	InactiveFG string `toml:"inactive_fg"`
}

type EditorStyle struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Highlights string `toml:"highlights"`
	Cursor     string `toml:"cursor"`
}

type CommandStyle struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Cursor     string `toml:"cursor"`
}

type PopupStyle struct {
	BG      string `toml:"bg"`
	FG      string `toml:"fg"`
	ErrorFG string `toml:"error_fg"`
	ErrorBG string `toml:"error_bg"`
}

func DefaultTheme() Theme {
	return Theme{
		Status: StatusStyle{Foreground: "#d0d0d0"},
		Tabs: TabsStyle{
			ActiveBG:   "#3a3a3a",
			ActiveFG:   "#ffffff",
			InactiveBG: "#1c1c1c",
			InactiveFG: "#8a8a8a",
		},
		Editor: EditorStyle{
			Background: "#000000",
			Foreground: "#e4e4e4",
			Highlights: "#f9d800",
			Cursor:     "#0087f9",
		},
		Command: CommandStyle{
			Background: "#000000",
			Foreground: "#e4e4e4",
			Cursor:     "#0087f9",
		},
		Popup: PopupStyle{
			BG:      "#ffffff",
			FG:      "#000000",
			ErrorFG: "#ff0000",
			ErrorBG: "#000000",
		},
	}
}

// LoadTheme reads the theme at path. A missing, empty or unparsable file is
// replaced with the default theme, which is also returned.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err == nil && len(data) > 0 {
		var t Theme
		if err := toml.Unmarshal(data, &t); err == nil {
			return t, nil
		}
	}
	def := DefaultTheme()
	return def, writeTheme(path, def)
}

func writeTheme(path string, t Theme) error {
	data, err := toml.Marshal(t)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ListThemes returns the theme files in dir, sorted by name.
func ListThemes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".toml" {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

// ApplyTheme validates the theme at src and installs it as dst.
func ApplyTheme(src, dst string) (Theme, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return Theme{}, err
	}
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, &ParseError{Path: src, Err: err}
	}
	if err := writeTheme(dst, t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// RGB parses #rrggbb. Anything else is reported as not ok.
func RGB(hex string) (r, g, b uint8, ok bool) {
	if len(hex) != 7 || !strings.HasPrefix(hex, "#") {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// FG returns the 24-bit foreground escape for hex, or "" if hex is invalid.
func FG(hex string) string {
	r, g, b, ok := RGB(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// BG returns the 24-bit background escape for hex, or "" if hex is invalid.
func BG(hex string) string {
	r, g, b, ok := RGB(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}
