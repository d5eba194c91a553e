package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/JackWReid/tpad/internal/config"
	"github.com/JackWReid/tpad/internal/document"
	"github.com/JackWReid/tpad/internal/search"
)

// Screen layout, top to bottom: status row, tab row, top rule, text rows,
// bottom rule, command row.
const (
	chromeRows = 5
	textTop    = 4 // 1-based screen row of the first text row
	tabSize    = 4
	tabPad     = 2
)

// TextRows is the number of text rows drawn on a terminal of the given
// height.
func TextRows(height int) int {
	return max(height-chromeRows, 1)
}

// WindowHeight is the window height handed to documents. The cursor row may
// reach VisibleRows, one past the last bordered row, so the text area is
// one row taller than VisibleRows.
func WindowHeight(height int) int {
	return TextRows(height) + 1
}

// Frame is everything one redraw needs.
type Frame struct {
	Width, Height int
	Docs          []*document.Document
	Active        int
	Theme         config.Theme
	LineNumbers   bool
	Focus         Focus
	Command       *CommandLine
	Status        *StatusBar
	Popup         *Popup
}

// Layout records where the last frame put the text, for mapping mouse
// clicks back to buffer positions.
type Layout struct {
	Gutter    int // columns taken by line numbers
	LeftCells int // horizontal scroll in display cells
}

// Renderer builds a frame buffer and writes it to the terminal in one go.
type Renderer struct {
	buf    strings.Builder
	layout Layout
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Layout returns the layout of the last rendered frame.
func (r *Renderer) Layout() Layout { return r.layout }

// Render draws the full screen and places the cursor.
func (r *Renderer) Render(f Frame) string {
	r.buf.Reset()

	// Hide cursor during drawing.
	r.buf.WriteString("\x1b[?25l")

	// Clear screen and move to top-left.
	r.buf.WriteString("\x1b[2J\x1b[H")

	doc := f.Docs[f.Active]
	rows := TextRows(f.Height)
	r.layout = r.computeLayout(f, doc)

	r.renderStatusBar(f, doc)
	r.renderTabs(f)
	r.renderRule(textTop-1, " "+doc.Name()+" ", f)
	for i := 0; i < rows; i++ {
		r.renderTextRow(f, doc, i)
	}
	r.renderRule(textTop+rows, "", f)
	r.renderCommandRow(f)
	if f.Popup != nil {
		r.renderPopup(f)
	}

	// Position the cursor.
	var row, col int
	var cursorColor string
	if f.Focus == FocusCommand {
		row = textTop + rows + 1
		col = 2 + runewidth.StringWidth(string([]rune(f.Command.String())[:f.Command.Cursor()]))
		cursorColor = f.Theme.Command.Cursor
	} else {
		pos := doc.Pos()
		row = textTop + min(doc.View.Cursor.Row, rows-1)
		col = r.layout.Gutter + displayCol(doc.Buffer.Line(pos.Line), pos.Col) - r.layout.LeftCells + 1
		cursorColor = f.Theme.Editor.Cursor
	}
	if _, _, _, ok := config.RGB(cursorColor); ok {
		fmt.Fprintf(&r.buf, "\x1b]12;%s\x07", cursorColor)
	}
	fmt.Fprintf(&r.buf, "\x1b[%d;%dH", row, max(col, 1))

	// Show cursor, unless a popup covers the screen.
	if f.Popup == nil {
		r.buf.WriteString("\x1b[?25h")
	}

	return r.buf.String()
}

func (r *Renderer) computeLayout(f Frame, doc *document.Document) Layout {
	var l Layout
	if f.LineNumbers {
		l.Gutter = max(len(fmt.Sprint(doc.Buffer.LineCount())), 3) + 1
	}
	width := max(f.Width-l.Gutter, 1)
	pos := doc.Pos()
	if x := displayCol(doc.Buffer.Line(pos.Line), pos.Col); x >= width {
		l.LeftCells = x - width + 1
	}
	return l
}

func (r *Renderer) renderStatusBar(f Frame, doc *document.Document) {
	r.buf.WriteString("\x1b[1;1H")
	r.buf.WriteString(config.FG(f.Theme.Status.Foreground))

	left := f.Status.FormatLeft(doc, len(f.Docs))
	right := f.Status.FormatRight(doc)
	rightWidth := runewidth.StringWidth(right)

	if runewidth.StringWidth(left)+rightWidth >= f.Width {
		// Truncate left side if needed.
		left = runewidth.Truncate(left, max(f.Width-rightWidth-1, 0), "")
	}
	gap := max(f.Width-runewidth.StringWidth(left)-rightWidth, 0)

	r.buf.WriteString(left)
	r.buf.WriteString(strings.Repeat(" ", gap))
	r.buf.WriteString(right)

	// Reset attributes.
	r.buf.WriteString("\x1b[0m")
}

// tabPacks splits tab labels into runs that each fit in width.
func tabPacks(labels []string, width int) [][]int {
	packs := [][]int{{}}
	used := 0
	for i, label := range labels {
		w := runewidth.StringWidth(label) + tabPad
		cur := len(packs) - 1
		if used+w > width && len(packs[cur]) > 0 {
			packs = append(packs, nil)
			cur++
			used = 0
		}
		packs[cur] = append(packs[cur], i)
		used += w
	}
	return packs
}

func tabLabel(i int, doc *document.Document) string {
	name := doc.Name()
	if doc.Dirty() {
		name += "*"
	}
	return fmt.Sprintf("%d:%s", i+1, name)
}

// renderTabs draws the run of tabs that contains the active document.
func (r *Renderer) renderTabs(f Frame) {
	r.buf.WriteString("\x1b[2;1H")

	labels := make([]string, len(f.Docs))
	for i, d := range f.Docs {
		labels[i] = tabLabel(i, d)
	}
	var pack []int
	for _, p := range tabPacks(labels, f.Width) {
		for _, i := range p {
			if i == f.Active {
				pack = p
			}
		}
	}

	used := 0
	tabs := f.Theme.Tabs
	for _, i := range pack {
		if i == f.Active {
			r.buf.WriteString(config.BG(tabs.ActiveBG) + config.FG(tabs.ActiveFG))
		} else {
			r.buf.WriteString(config.BG(tabs.InactiveBG) + config.FG(tabs.InactiveFG))
		}
		label := runewidth.Truncate(" "+labels[i]+" ", max(f.Width-used, 0), "")
		r.buf.WriteString(label)
		used += runewidth.StringWidth(label)
		r.buf.WriteString("\x1b[0m")
	}
}

func (r *Renderer) renderRule(row int, title string, f Frame) {
	fmt.Fprintf(&r.buf, "\x1b[%d;1H", row)
	r.buf.WriteString(config.BG(f.Theme.Editor.Background))
	r.buf.WriteString(config.FG(f.Theme.Editor.Foreground))
	r.buf.WriteString("\x1b[2m")
	line := runewidth.Truncate("──"+title, max(f.Width, 0), "")
	r.buf.WriteString(line)
	r.buf.WriteString(strings.Repeat("─", max(f.Width-runewidth.StringWidth(line), 0)))
	r.buf.WriteString("\x1b[0m")
}

// cell styles, in increasing precedence
const (
	cellPlain = iota
	cellMatch
	cellCurrentMatch
	cellSelected
)

func (r *Renderer) cellStyle(style int, f Frame) string {
	base := "\x1b[0m" + config.BG(f.Theme.Editor.Background) + config.FG(f.Theme.Editor.Foreground)
	switch style {
	case cellMatch:
		return base + config.BG(f.Theme.Editor.Highlights) + "\x1b[30m"
	case cellCurrentMatch:
		return base + config.BG(f.Theme.Editor.Highlights) + "\x1b[30;1;4m"
	case cellSelected:
		return base + "\x1b[7m"
	}
	return base
}

func (r *Renderer) renderTextRow(f Frame, doc *document.Document, i int) {
	line := doc.View.ScrollOffset + i
	fmt.Fprintf(&r.buf, "\x1b[%d;1H", textTop+i)
	r.buf.WriteString(r.cellStyle(cellPlain, f))

	used := 0
	if r.layout.Gutter > 0 {
		r.buf.WriteString("\x1b[2m")
		if line < doc.Buffer.LineCount() {
			fmt.Fprintf(&r.buf, "%*d ", r.layout.Gutter-1, line+1)
		} else {
			fmt.Fprintf(&r.buf, "%*s ", r.layout.Gutter-1, "~")
		}
		r.buf.WriteString("\x1b[22m")
		used = r.layout.Gutter
	}

	if line < doc.Buffer.LineCount() {
		used += r.renderCells(f, doc, line, f.Width-used)
	}

	r.buf.WriteString(r.cellStyle(cellPlain, f))
	r.buf.WriteString(strings.Repeat(" ", max(f.Width-used, 0)))
	r.buf.WriteString("\x1b[0m")
}

// renderCells draws the visible part of one buffer line and returns the
// number of cells written.
func (r *Renderer) renderCells(f Frame, doc *document.Document, line, width int) int {
	var matches []search.Match
	var current search.Match
	var hasCurrent bool
	if doc.Search.Active() {
		matches = doc.Search.OnLine(line)
		current, hasCurrent = doc.Search.Current()
	}

	x, used := 0, 0
	style := cellPlain
	for col, ch := range []rune(doc.Buffer.Line(line)) {
		w := cellWidth(ch, x)
		start := x
		x += w
		if start < r.layout.LeftCells {
			continue
		}
		if used+w > width {
			break
		}

		s := cellPlain
		switch {
		case doc.View.Contains(line, col):
			s = cellSelected
		case hasCurrent && current.Line == line && col >= current.StartCol && col < current.EndCol:
			s = cellCurrentMatch
		case inMatch(matches, col):
			s = cellMatch
		}
		if s != style {
			r.buf.WriteString(r.cellStyle(s, f))
			style = s
		}

		switch {
		case ch == '\t':
			r.buf.WriteString(strings.Repeat(" ", w))
		case ch < ' ' || ch == 0x7f:
			r.buf.WriteString("?")
		default:
			r.buf.WriteRune(ch)
		}
		used += w
	}
	return used
}

func inMatch(matches []search.Match, col int) bool {
	for _, m := range matches {
		if col >= m.StartCol && col < m.EndCol {
			return true
		}
	}
	return false
}

func (r *Renderer) renderCommandRow(f Frame) {
	fmt.Fprintf(&r.buf, "\x1b[%d;1H", textTop+TextRows(f.Height)+1)
	r.buf.WriteString(config.BG(f.Theme.Command.Background))
	r.buf.WriteString(config.FG(f.Theme.Command.Foreground))
	text := runewidth.Truncate(":"+f.Command.String(), f.Width, "")
	if f.Focus != FocusCommand && f.Command.String() == "" {
		text = ""
	}
	r.buf.WriteString(text)
	r.buf.WriteString(strings.Repeat(" ", max(f.Width-runewidth.StringWidth(text), 0)))
	r.buf.WriteString("\x1b[0m")
}

// renderPopup centres the popup box over the screen.
func (r *Renderer) renderPopup(f Frame) {
	box := f.Popup.View(f.Theme)
	lines := strings.Split(box, "\n")
	top := max((f.Height-len(lines))/2, 0) + 1
	left := max((f.Width-lipgloss.Width(box))/2, 0) + 1
	for i, l := range lines {
		fmt.Fprintf(&r.buf, "\x1b[%d;%dH", top+i, left)
		r.buf.WriteString(l)
	}
	r.buf.WriteString("\x1b[0m")
}

// cellWidth is the display width of r drawn at display column x.
func cellWidth(r rune, x int) int {
	if r == '\t' {
		return tabSize - x%tabSize
	}
	if r < ' ' || r == 0x7f {
		return 1
	}
	return runewidth.RuneWidth(r)
}

// displayCol converts a rune column to a display column, expanding tabs and
// wide characters.
func displayCol(line string, col int) int {
	x := 0
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		x += cellWidth(r, x)
	}
	return x
}

// bufferCol converts a display column back to a rune column. A target inside
// a wide character or tab maps to that character.
func bufferCol(line string, target int) int {
	if target <= 0 {
		return 0
	}
	x := 0
	runes := []rune(line)
	for i, r := range runes {
		x += cellWidth(r, x)
		if x > target {
			return i
		}
		if x == target {
			return i + 1
		}
	}
	return len(runes)
}
