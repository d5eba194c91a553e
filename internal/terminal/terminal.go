package terminal

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// Terminal manages raw mode, the alternate screen buffer, and terminal
// dimensions.
type Terminal struct {
	in       *os.File
	out      *os.File
	oldState *term.State
	width    int
	height   int
	sigwinch chan os.Signal
}

func NewTerminal() (*Terminal, error) {
	t := &Terminal{in: os.Stdin, out: os.Stdout}

	oldState, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return nil, err
	}
	t.oldState = oldState

	// Alternate screen, hidden cursor during setup, SGR mouse reporting.
	io.WriteString(t.out, "\x1b[?1049h\x1b[?25l\x1b[?1000h\x1b[?1006h")

	t.width, t.height, err = term.GetSize(int(t.out.Fd()))
	if err != nil {
		t.Restore()
		return nil, err
	}

	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, syscall.SIGWINCH)

	return t, nil
}

// Resize re-queries terminal dimensions. Returns true if the size changed.
func (t *Terminal) Resize() bool {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return false
	}
	changed := w != t.width || h != t.height
	t.width = w
	t.height = h
	return changed
}

func (t *Terminal) Width() int  { return t.width }
func (t *Terminal) Height() int { return t.height }

// SigwinchChan returns the channel that receives SIGWINCH signals.
func (t *Terminal) SigwinchChan() <-chan os.Signal {
	return t.sigwinch
}

// Write sends a rendered frame to the terminal.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Restore returns the terminal to its original state.
func (t *Terminal) Restore() {
	io.WriteString(t.out, "\x1b[?1006l\x1b[?1000l\x1b[?25h\x1b[?1049l")
	if t.oldState != nil {
		term.Restore(int(t.in.Fd()), t.oldState)
	}
	if t.sigwinch != nil {
		signal.Stop(t.sigwinch)
	}
}

// ReadEvent reads a single input event from stdin in raw mode.
func (t *Terminal) ReadEvent() (InputEvent, error) {
	buf := make([]byte, 64)
	n, err := t.in.Read(buf)
	if err != nil {
		return InputEvent{}, err
	}
	return parseInput(buf[:n]), nil
}
