package editor

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JackWReid/tpad/internal/config"
	"github.com/JackWReid/tpad/internal/document"
)

// PopupKind says what a popup is asking for.
type PopupKind int

const (
	PopupError      PopupKind = iota // any key dismisses
	PopupSaveOnExit                  // y / n / esc
	PopupThemeSelect                 // list of theme files
)

// themeRows is the most theme names listed at once.
const themeRows = 8

// Popup is a modal box drawn over the editor. While one is shown it receives
// every key.
type Popup struct {
	Kind    PopupKind
	Message string

	doc    *document.Document // document to save, for PopupSaveOnExit
	themes []string
	picker Picker
}

func errorPopup(msg string) *Popup {
	return &Popup{Kind: PopupError, Message: msg}
}

func saveOnExitPopup(doc *document.Document) *Popup {
	return &Popup{
		Kind:    PopupSaveOnExit,
		Message: "Save " + doc.Name() + " before quitting?",
		doc:     doc,
	}
}

func themePopup(themes []string) *Popup {
	p := &Popup{Kind: PopupThemeSelect, Message: "Select a theme", themes: themes}
	p.picker.Show(0)
	return p
}

// Selected returns the highlighted theme file.
func (p *Popup) Selected() string {
	if p.picker.Selected < 0 || p.picker.Selected >= len(p.themes) {
		return ""
	}
	return p.themes[p.picker.Selected]
}

// View renders the popup box.
func (p *Popup) View(theme config.Theme) string {
	fg, bg := theme.Popup.FG, theme.Popup.BG
	if p.Kind == PopupError {
		fg, bg = theme.Popup.ErrorFG, theme.Popup.ErrorBG
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(fg)).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1)

	var body strings.Builder
	switch p.Kind {
	case PopupError:
		body.WriteString(lipgloss.NewStyle().Bold(true).Render("Error"))
		body.WriteString("\n\n" + p.Message + "\n\n")
		body.WriteString("press any key")
	case PopupSaveOnExit:
		body.WriteString(p.Message + "\n\n")
		body.WriteString("[y] save  [n] discard  [esc] cancel")
	case PopupThemeSelect:
		body.WriteString(p.Message + "\n")
		start, end := p.picker.Window(len(p.themes), themeRows)
		for i := start; i < end; i++ {
			name := strings.TrimSuffix(filepath.Base(p.themes[i]), ".toml")
			if i == p.picker.Selected {
				body.WriteString("\n> " + name)
			} else {
				body.WriteString("\n  " + name)
			}
		}
		body.WriteString("\n\n[enter] apply  [q] close")
	}
	return style.Render(body.String())
}
