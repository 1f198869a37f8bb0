// Package markdown parses the small markdown subset used by streamed replies
// and renders it to ANSI-styled terminal output using lipgloss and reflow.
//
// The parser is a pure function of its input and is safe to call on any
// prefix of a document: constructs cut off mid-stream degrade to plain
// paragraph text and never cause an error or panic.
package markdown

import "github.com/kodewerk/smartchat"

// Render parses markdown source and returns ANSI-styled terminal output.
// Paragraphs, list items and quotes are word-wrapped to width. Code blocks
// are rendered at full width without reflow.
func Render(source string, width int, theme smartchat.Theme) string {
	if source == "" {
		return ""
	}
	r := newRenderer(theme)
	return r.render(Parse(source), width)
}
