// Package search finds literal occurrences of a needle in a buffer and keeps
// track of which match is current.
package search

import (
	"strings"
	"unicode/utf8"
)

// Match is one occurrence, in rune columns. EndCol is exclusive.
type Match struct {
	Line     int
	StartCol int
	EndCol   int
}

// Find scans every line left to right. Matches do not overlap: scanning
// resumes after the end of each one. An empty needle matches nothing.
func Find(lines []string, needle string) []Match {
	if needle == "" {
		return nil
	}
	width := utf8.RuneCountInString(needle)
	var matches []Match
	for i, line := range lines {
		col := 0
		rest := line
		for {
			idx := strings.Index(rest, needle)
			if idx < 0 {
				break
			}
			col += utf8.RuneCountInString(rest[:idx])
			matches = append(matches, Match{Line: i, StartCol: col, EndCol: col + width})
			col += width
			rest = rest[idx+len(needle):]
		}
	}
	return matches
}

// CountWord counts whitespace-separated tokens that contain word.
func CountWord(lines []string, word string) int {
	if word == "" {
		return 0
	}
	n := 0
	for _, line := range lines {
		for _, tok := range strings.Fields(line) {
			if strings.Contains(tok, word) {
				n++
			}
		}
	}
	return n
}

// State is the highlight state of one document.
type State struct {
	matches []Match
	current int
	active  bool
}

// Highlight stores matches and makes the first one current.
func (s *State) Highlight(matches []Match) {
	s.matches = matches
	s.current = 0
	s.active = true
}

func (s *State) Unhighlight() {
	s.matches = nil
	s.current = 0
	s.active = false
}

func (s *State) Active() bool { return s.active }
func (s *State) Matches() []Match { return s.matches }

// Index returns the position of the current match among all matches.
func (s *State) Index() int { return s.current }

func (s *State) Current() (Match, bool) {
	if len(s.matches) == 0 {
		return Match{}, false
	}
	return s.matches[s.current], true
}

// Next advances to the following match, wrapping at the end.
func (s *State) Next() (Match, bool) {
	if len(s.matches) == 0 {
		return Match{}, false
	}
	s.current = (s.current + 1) % len(s.matches)
	return s.matches[s.current], true
}

// Prev steps back to the previous match, wrapping at the start.
func (s *State) Prev() (Match, bool) {
	if len(s.matches) == 0 {
		return Match{}, false
	}
	s.current = (s.current - 1 + len(s.matches)) % len(s.matches)
	return s.matches[s.current], true
}

// OnLine returns the highlighted matches on one line.
func (s *State) OnLine(line int) []Match {
	if !s.active {
		return nil
	}
	var out []Match
	for _, m := range s.matches {
		if m.Line == line {
			out = append(out, m)
		} else if m.Line > line {
			break
		}
	}
	return out
}
