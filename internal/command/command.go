// Package command parses the text typed on the editor's command line.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sajari/fuzzy"
)

// Kind identifies a command.
type Kind int

const (
	Open        Kind = iota // o <path>
	Find                    // /<pattern>
	Count                   // count <word>
	List                    // list
	ClearUndo               // clundo
	Close                   // q
	ForceClose              // q!
	Write                   // w [name]
	WriteClose              // wq
	Exit                    // cl
	Theme                   // theme
	SetTheme                // set
	Change                  // b <n>
	NoHighlight             // noh
)

// Command is a parsed command line.
type Command struct {
	Kind Kind
	Arg  string // path, pattern or word
	N    int    // tab index for Change, zero-based
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArg     = errors.New("missing argument")
)

// UnknownError is returned for a command name that does not exist.
// Suggestion is the closest known name, if any.
type UnknownError struct {
	Name       string
	Suggestion string
}

func (e *UnknownError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v: %s (did you mean %s?)", ErrUnknownCommand, e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%v: %s", ErrUnknownCommand, e.Name)
}

func (e *UnknownError) Unwrap() error { return ErrUnknownCommand }

var names = map[string]Kind{
	"o":      Open,
	"count":  Count,
	"list":   List,
	"clundo": ClearUndo,
	"q":      Close,
	"q!":     ForceClose,
	"w":      Write,
	"wq":     WriteClose,
	"cl":     Exit,
	"theme":  Theme,
	"set":    SetTheme,
	"b":      Change,
	"noh":    NoHighlight,
}

var model = newModel()

func newModel() *fuzzy.Model {
	m := fuzzy.NewModel()
	m.SetThreshold(1)
	m.SetDepth(2)
	for name := range names {
		m.TrainWord(name)
	}
	return m
}

// Parse turns one command line into a Command. An empty line parses to
// nothing and returns (nil, nil).
func Parse(input string) (*Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}
	if pat, ok := strings.CutPrefix(input, "/"); ok {
		pat = strings.TrimSpace(pat)
		if pat == "" {
			return nil, fmt.Errorf("/: %w: pattern", ErrMissingArg)
		}
		return &Command{Kind: Find, Arg: pat}, nil
	}

	name, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)
	kind, ok := names[name]
	if !ok {
		return nil, &UnknownError{Name: name, Suggestion: suggest(name)}
	}

	cmd := &Command{Kind: kind, Arg: rest}
	switch kind {
	case Open:
		if rest == "" {
			return nil, fmt.Errorf("o: %w: path", ErrMissingArg)
		}
	case Count:
		word, _, _ := strings.Cut(rest, " ")
		if word == "" {
			return nil, fmt.Errorf("count: %w: word", ErrMissingArg)
		}
		cmd.Arg = word
	case Change:
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("b: tab number expected, got %q", rest)
		}
		cmd.Arg = ""
		cmd.N = n - 1
	}
	return cmd, nil
}

func suggest(name string) string {
	s := model.SpellCheck(name)
	if s == name {
		return ""
	}
	return s
}
