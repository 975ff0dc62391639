// Package colorize renders text with bold ANSI terminal colors.
package colorize

import (
	"regexp"
	"strconv"
)

// Code is a standard terminal color index.
type Code int

// Foreground colors.
const (
	Black Code = iota + 30
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// escape starts an ANSI control sequence.
const escape = "\033["

var sequence = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Host is implemented by types that own a representation color.
type Host interface {
	ReprColorCode() Code
}

// Prefix returns the bold color selector for code.
func (c Code) Prefix() string {
	return escape + "1;" + strconv.Itoa(int(c)) + "m"
}

// Wrap prefixes text with the bold color selector for code.
// No reset sequence is appended.
func Wrap(code Code, text string) string {
	return code.Prefix() + text
}

// Repr colors text with the host's color code.
func Repr(h Host, text string) string {
	return Wrap(h.ReprColorCode(), text)
}

// Strip removes ANSI color sequences from s.
func Strip(s string) string {
	return sequence.ReplaceAllString(s, "")
}

// Reset restores the terminal's default rendition.
const Reset = escape + "0m"
