// Package config loads settings and the colour theme from the user's config
// directory.
package config

import (
	"os"
	"path/filepath"
)

// Paths locates tpad's files inside one config directory.
type Paths struct {
	Dir string
}

// DefaultPaths uses <user config dir>/tpad, falling back to ./tpad when the
// platform has no config directory.
func DefaultPaths() Paths {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return Paths{Dir: filepath.Join(base, "tpad")}
}

func (p Paths) Settings() string { return filepath.Join(p.Dir, "config.toml") }
func (p Paths) Theme() string { return filepath.Join(p.Dir, "theme.toml") }
func (p Paths) Themes() string { return filepath.Join(p.Dir, "themes") }
func (p Paths) Session() string { return filepath.Join(p.Dir, "session.json") }
