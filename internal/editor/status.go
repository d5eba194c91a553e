package editor

import (
	"fmt"

	"github.com/JackWReid/tpad/internal/document"
)

// StatusBar generates the status row text and holds the transient message.
type StatusBar struct {
	Message string // cleared on the next input event
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

func (s *StatusBar) SetMessage(msg string) { s.Message = msg }
func (s *StatusBar) ClearMessage()         { s.Message = "" }

// FormatLeft returns the left-aligned portion of the status row: cursor,
// save state, permissions and size of doc.
func (s *StatusBar) FormatLeft(doc *document.Document, tabs int) string {
	pos := doc.Pos()
	saved := "Saved"
	if doc.Dirty() {
		saved = "Unsaved"
	}
	perms := doc.Perms
	if perms == "" {
		perms = "new file"
	}
	return fmt.Sprintf(" Tpad | Line: %d Col: %d | %s | %s | Size: %s | Tabs: %d",
		pos.Line+1, pos.Col+1, saved, perms, formatSize(doc.Buffer.Size()), tabs)
}

// FormatRight returns the message if there is one, otherwise the search and
// undo counters.
func (s *StatusBar) FormatRight(doc *document.Document) string {
	if s.Message != "" {
		return s.Message + " "
	}
	searchStr := ""
	if doc.Search.Active() {
		if n := len(doc.Search.Matches()); n > 0 {
			searchStr = fmt.Sprintf("%d/%d matches  ", doc.Search.Index()+1, n)
		} else {
			searchStr = "no matches  "
		}
	}
	return fmt.Sprintf("%s%d words  undo %d/%d ",
		searchStr, doc.Buffer.WordCount(), doc.History.Cursor(), doc.History.Len())
}

func formatSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1fM", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fK", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
