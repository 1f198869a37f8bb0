package markdown

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kodewerk/smartchat"
	"github.com/kodewerk/smartchat/highlight"
)

const fence = "```"

// Parse converts text into blocks in source order. Fenced code blocks are
// extracted first; the text around them is scanned line by line.
func Parse(text string) []smartchat.Block {
	var blocks []smartchat.Block
	cursor := 0
	for pos := 0; pos < len(text); {
		i := strings.Index(text[pos:], fence)
		if i < 0 {
			break
		}
		start := pos + i
		lang, code, end, ok := matchFence(text, start)
		if !ok {
			pos = start + 1
			continue
		}
		if start > cursor {
			blocks = append(blocks, parseText(text[cursor:start])...)
		}
		blocks = append(blocks, smartchat.CodeBlock{
			Language: highlight.NormalizeLanguage(lang),
			Lines:    strings.Split(code, "\n"),
		})
		cursor = end
		pos = end
	}
	if cursor < len(text) {
		blocks = append(blocks, parseText(text[cursor:])...)
	}
	return blocks
}

// matchFence matches an opening fence at start: three backticks, an optional
// [A-Za-z0-9_-] tag and a newline, then the shortest body up to the next
// three backticks. It reports false when the fence is not closed yet.
func matchFence(text string, start int) (lang, code string, end int, ok bool) {
	j := start + len(fence)
	tagStart := j
	for j < len(text) && isTagByte(text[j]) {
		j++
	}
	if j >= len(text) || text[j] != '\n' {
		return "", "", 0, false
	}
	lang = text[tagStart:j]
	body := j + 1
	k := strings.Index(text[body:], fence)
	if k < 0 {
		return "", "", 0, false
	}
	code = strings.TrimSuffix(text[body:body+k], "\n")
	return lang, code, body + k + len(fence), true
}

func isTagByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

// parseText scans text outside code fences. Detection precedence at the
// start of a block is heading, unordered list, ordered list, quote,
// paragraph; an open block consumes following lines only while they match
// its own continuation rule.
func parseText(text string) []smartchat.Block {
	lines := strings.Split(text, "\n")
	var blocks []smartchat.Block
	for i := 0; i < len(lines); {
		line := strings.TrimSpace(lines[i])
		switch {
		case line == "":
			i++
		case headingLevel(line) > 0:
			level := headingLevel(line)
			blocks = append(blocks, smartchat.Heading{Level: level, Text: strings.TrimSpace(line[level+1:])})
			i++
		case isUnordered(line):
			var items []string
			for ; i < len(lines) && isUnordered(strings.TrimSpace(lines[i])); i++ {
				items = append(items, stripMarker(strings.TrimSpace(lines[i]), 1))
			}
			blocks = append(blocks, smartchat.List{Items: items})
		case orderedMarker(line) > 0:
			var items []string
			for ; i < len(lines); i++ {
				candidate := strings.TrimSpace(lines[i])
				n := orderedMarker(candidate)
				if n == 0 {
					break
				}
				items = append(items, stripMarker(candidate, n))
			}
			blocks = append(blocks, smartchat.List{Ordered: true, Items: items})
		case isQuote(line):
			var parts []string
			for ; i < len(lines) && isQuote(strings.TrimSpace(lines[i])); i++ {
				parts = append(parts, strings.TrimSpace(strings.TrimSpace(lines[i])[2:]))
			}
			blocks = append(blocks, smartchat.Quote{Text: strings.Join(parts, " ")})
		default:
			parts := []string{line}
			for i++; i < len(lines); i++ {
				candidate := strings.TrimSpace(lines[i])
				if candidate == "" || startsBlock(candidate) {
					break
				}
				parts = append(parts, candidate)
			}
			blocks = append(blocks, smartchat.Paragraph{Text: strings.Join(parts, " ")})
		}
	}
	return blocks
}

func startsBlock(line string) bool {
	return headingLevel(line) > 0 || isUnordered(line) || orderedMarker(line) > 0 || isQuote(line)
}

// headingLevel returns 4, 3 or 2 for a "#### ", "### " or "## " prefix,
// checked longest first, and 0 otherwise.
func headingLevel(line string) int {
	for _, level := range []int{4, 3, 2} {
		if strings.HasPrefix(line, strings.Repeat("#", level)+" ") {
			return level
		}
	}
	return 0
}

// isUnordered matches ^[-*]\s+.
func isUnordered(line string) bool {
	return len(line) > 1 && (line[0] == '-' || line[0] == '*') && startsWithSpace(line[1:])
}

// orderedMarker returns the length of a ^\d+\. marker followed by
// whitespace, or 0.
func orderedMarker(line string) int {
	n := 0
	for n < len(line) && line[n] >= '0' && line[n] <= '9' {
		n++
	}
	if n == 0 || n >= len(line) || line[n] != '.' {
		return 0
	}
	if !startsWithSpace(line[n+1:]) {
		return 0
	}
	return n + 1
}

func isQuote(line string) bool {
	return strings.HasPrefix(line, "> ")
}

func startsWithSpace(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}

// stripMarker removes a marker of n bytes and the whitespace after it.
func stripMarker(line string, n int) string {
	return strings.TrimSpace(line[n:])
}
