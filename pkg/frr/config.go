// Package frr edits router configuration text held as an ordered list of
// lines. Sections are located by a start pattern and a stop pattern and can
// be removed, replaced or have lines inserted before them.
//
// A Config is not safe for concurrent use.
package frr

import (
	"fmt"
	"slices"
	"strings"
)

// Config holds a working copy of a configuration and the pristine copy it
// was built from. Neither aliases the caller's storage.
type Config struct {
	lines    []string
	original []string
}

// New builds a Config from a string (split on newlines) or a list of lines.
// Other input types are ErrInvalidArgument.
func New(config any) (*Config, error) {
	lines, err := ToLines(config)
	if err != nil {
		return nil, err
	}
	return FromLines(lines), nil
}

// FromLines builds a Config from a copy of lines.
func FromLines(lines []string) *Config {
	return &Config{
		lines:    cloneLines(lines),
		original: cloneLines(lines),
	}
}

// FromString builds a Config from text split on newlines.
func FromString(text string) *Config {
	return FromLines(strings.Split(text, "\n"))
}

// Lines returns a copy of the working lines.
func (c *Config) Lines() []string {
	return cloneLines(c.lines)
}

// Original returns a copy of the lines the Config was built from.
func (c *Config) Original() []string {
	return cloneLines(c.original)
}

// Len is the number of working lines.
func (c *Config) Len() int {
	return len(c.lines)
}

// Changed reports whether the working copy differs from the original.
func (c *Config) Changed() bool {
	return !slices.Equal(c.lines, c.original)
}

// Reset discards every edit made since construction.
func (c *Config) Reset() {
	c.lines = cloneLines(c.original)
}

// String renders the working copy joined by newlines.
func (c *Config) String() string {
	return strings.Join(c.lines, "\n")
}

// GoString renders the Config for %#v.
func (c *Config) GoString() string {
	return fmt.Sprintf("frr.Config(%q)", c.String())
}
