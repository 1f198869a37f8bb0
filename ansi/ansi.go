// Package ansi cleans text typed, pasted or piped into smartchat so that it
// cannot carry terminal escape sequences into the TUI or the printed letter.
package ansi

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Sanitize strips escape sequences and control characters from user input.
// Tabs and newlines are kept. CRLF and lone CR line endings become LF.
func Sanitize(s string) string {
	s = xansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\t' || r == '\n' || (r > 0x1F && r != 0x7F) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeLine is Sanitize for single-line input such as a prompt: line
// breaks and tabs collapse to single spaces.
func SanitizeLine(s string) string {
	return strings.Join(strings.Fields(Sanitize(s)), " ")
}
