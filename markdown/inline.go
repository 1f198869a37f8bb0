package markdown

import (
	"strings"

	"github.com/kodewerk/smartchat"
)

// ParseInline splits text into plain runs, **bold** spans and `code` spans.
// Spans cannot nest and need non-empty content without their own delimiter
// inside; anything that does not form a span stays plain text.
func ParseInline(text string) []smartchat.InlineToken {
	var tokens []smartchat.InlineToken
	cursor := 0
	for i := 0; i < len(text); {
		tok, end := matchSpan(text, i)
		if tok == nil {
			i++
			continue
		}
		if i > cursor {
			tokens = append(tokens, smartchat.PlainText{Text: text[cursor:i]})
		}
		tokens = append(tokens, tok)
		cursor = end
		i = end
	}
	if cursor < len(text) {
		tokens = append(tokens, smartchat.PlainText{Text: text[cursor:]})
	}
	return tokens
}

func matchSpan(text string, i int) (smartchat.InlineToken, int) {
	switch {
	case strings.HasPrefix(text[i:], "**"):
		inner := text[i+2:]
		j := strings.IndexByte(inner, '*')
		if j > 0 && strings.HasPrefix(inner[j:], "**") {
			return smartchat.Bold{Text: inner[:j]}, i + 2 + j + 2
		}
	case text[i] == '`':
		inner := text[i+1:]
		j := strings.IndexByte(inner, '`')
		if j > 0 {
			return smartchat.InlineCode{Text: inner[:j]}, i + 1 + j + 1
		}
	}
	return nil, 0
}
