package terminal

import (
	"unicode/utf8"
)

// KeyType identifies a key.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character, or a letter chord with Mod set
	KeyEscape                   // Escape key (standalone)
	KeyEnter                    // Enter/Return
	KeyTab                      // Tab
	KeyBackspace                // Backspace/Delete-backward
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyDelete                   // Delete/Forward-delete
	KeyPgUp                     // Page Up
	KeyPgDn                     // Page Down
	KeyUnknown                  // Unrecognised sequence
)

// Mod is a set of modifier keys held with a key.
type Mod int

const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
)

// Key is one key press. Ctrl+S arrives as {KeyRune, 's', ModCtrl}.
type Key struct {
	Type KeyType
	Rune rune
	Mod  Mod
}

// Is reports whether k is the rune r pressed with exactly mod.
func (k Key) Is(mod Mod, r rune) bool {
	return k.Type == KeyRune && k.Mod == mod && k.Rune == r
}

// EventType distinguishes the payloads of an InputEvent.
type EventType int

const (
	EventKey EventType = iota
	EventMouse
	EventPaste // several printable characters in one read
)

// MouseButton types.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseUnknown
)

// MouseEvent represents a mouse input event.
type MouseEvent struct {
	Button MouseButton
	Row    int  // 1-based terminal row
	Col    int  // 1-based terminal column
	Press  bool // true for press, false for release
}

// InputEvent wraps a key, a mouse event, or pasted text.
type InputEvent struct {
	Type  EventType
	Key   Key
	Mouse MouseEvent
	Text  string
}

// parseInput classifies one read from the terminal.
func parseInput(buf []byte) InputEvent {
	if len(buf) == 0 {
		return InputEvent{Type: EventKey, Key: Key{Type: KeyUnknown}}
	}

	if len(buf) >= 6 && buf[0] == 27 && buf[1] == '[' && buf[2] == '<' {
		if mouse, ok := parseMouseEvent(buf); ok {
			return InputEvent{Type: EventMouse, Mouse: mouse}
		}
	}

	if isPaste(buf) {
		return InputEvent{Type: EventPaste, Text: string(buf)}
	}

	return InputEvent{Type: EventKey, Key: parseKey(buf)}
}

// isPaste reports whether buf holds more than one character and nothing but
// text, tabs and line breaks.
func isPaste(buf []byte) bool {
	if buf[0] == 27 || utf8.RuneCount(buf) < 2 || !utf8.Valid(buf) {
		return false
	}
	for _, b := range buf {
		if b < 32 && b != '\n' && b != '\r' && b != '\t' {
			return false
		}
	}
	return true
}

func parseKey(buf []byte) Key {
	if len(buf) == 0 {
		return Key{Type: KeyUnknown}
	}

	if buf[0] == 27 {
		switch {
		case len(buf) == 1:
			return Key{Type: KeyEscape}
		case buf[1] == '[' && len(buf) >= 3:
			return parseCSI(buf[2:])
		case buf[1] == 'O' && len(buf) == 3:
			return parseSS3(buf[2])
		default:
			// ESC followed by a key is that key with Alt held.
			k := parseKey(buf[1:])
			if k.Type == KeyUnknown || k.Type == KeyEscape {
				return Key{Type: KeyUnknown}
			}
			k.Mod |= ModAlt
			return k
		}
	}

	if len(buf) == 1 {
		return parseByte(buf[0])
	}

	r, _ := utf8.DecodeRune(buf)
	if r >= 32 && r != utf8.RuneError {
		return Key{Type: KeyRune, Rune: r}
	}
	return Key{Type: KeyUnknown}
}

func parseByte(b byte) Key {
	switch {
	case b == 13:
		return Key{Type: KeyEnter}
	case b == 9:
		return Key{Type: KeyTab}
	case b == 127 || b == 8:
		return Key{Type: KeyBackspace}
	case b >= 1 && b <= 26:
		return Key{Type: KeyRune, Rune: rune('a' + b - 1), Mod: ModCtrl}
	case b >= 32 && b < 127:
		return Key{Type: KeyRune, Rune: rune(b)}
	default:
		return Key{Type: KeyUnknown}
	}
}

// parseCSI parses the part of a CSI sequence after ESC [, including the
// xterm modifier parameter in sequences like ESC [ 1 ; 2 A.
func parseCSI(seq []byte) Key {
	var params []int
	n, have := 0, false
	i := 0
	for ; i < len(seq); i++ {
		c := seq[i]
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
			have = true
			continue
		}
		if c == ';' {
			params = append(params, n)
			n, have = 0, false
			continue
		}
		break
	}
	if i >= len(seq) {
		return Key{Type: KeyUnknown}
	}
	if have {
		params = append(params, n)
	}

	var mod Mod
	if len(params) >= 2 {
		mod = modifier(params[1])
	}

	var k Key
	switch seq[i] {
	case 'A':
		k.Type = KeyUp
	case 'B':
		k.Type = KeyDown
	case 'C':
		k.Type = KeyRight
	case 'D':
		k.Type = KeyLeft
	case 'H':
		k.Type = KeyHome
	case 'F':
		k.Type = KeyEnd
	case '~':
		if len(params) == 0 {
			return Key{Type: KeyUnknown}
		}
		switch params[0] {
		case 1, 7:
			k.Type = KeyHome
		case 3:
			k.Type = KeyDelete
		case 4, 8:
			k.Type = KeyEnd
		case 5:
			k.Type = KeyPgUp
		case 6:
			k.Type = KeyPgDn
		default:
			return Key{Type: KeyUnknown}
		}
	default:
		return Key{Type: KeyUnknown}
	}
	k.Mod = mod
	return k
}

func parseSS3(b byte) Key {
	switch b {
	case 'A':
		return Key{Type: KeyUp}
	case 'B':
		return Key{Type: KeyDown}
	case 'C':
		return Key{Type: KeyRight}
	case 'D':
		return Key{Type: KeyLeft}
	case 'H':
		return Key{Type: KeyHome}
	case 'F':
		return Key{Type: KeyEnd}
	}
	return Key{Type: KeyUnknown}
}

// modifier decodes the xterm modifier parameter (1 + bitmask).
func modifier(p int) Mod {
	bits := p - 1
	var m Mod
	if bits&1 != 0 {
		m |= ModShift
	}
	if bits&2 != 0 {
		m |= ModAlt
	}
	if bits&4 != 0 {
		m |= ModCtrl
	}
	return m
}

// parseMouseEvent parses an SGR mouse sequence: ESC [ < Cb ; Cx ; Cy M|m
func parseMouseEvent(buf []byte) (MouseEvent, bool) {
	// Shortest form is ESC[<0;1;1M.
	if len(buf) < 9 || buf[0] != 27 || buf[1] != '[' || buf[2] != '<' {
		return MouseEvent{}, false
	}

	var fields [3]int
	i := 3
	for f := range fields {
		start := i
		for i < len(buf) && buf[i] >= '0' && buf[i] <= '9' {
			fields[f] = fields[f]*10 + int(buf[i]-'0')
			i++
		}
		if i == start || i >= len(buf) {
			return MouseEvent{}, false
		}
		if f < 2 {
			if buf[i] != ';' {
				return MouseEvent{}, false
			}
			i++
		}
	}

	var press bool
	switch buf[i] {
	case 'M':
		press = true
	case 'm':
		press = false
	default:
		return MouseEvent{}, false
	}

	button := fields[0]
	var btn MouseButton
	switch {
	case button == 64:
		btn = MouseWheelUp
	case button == 65:
		btn = MouseWheelDown
	case button >= 64:
		btn = MouseUnknown
	case button&0x03 == 0:
		btn = MouseLeft
	case button&0x03 == 1:
		btn = MouseMiddle
	case button&0x03 == 2:
		btn = MouseRight
	default:
		btn = MouseUnknown
	}

	return MouseEvent{Button: btn, Col: fields[1], Row: fields[2], Press: press}, true
}
