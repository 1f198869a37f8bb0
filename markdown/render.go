package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kodewerk/smartchat"
	"github.com/kodewerk/smartchat/highlight"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

type ansiRenderer struct {
	bold    lipgloss.Style
	accent  lipgloss.Style
	muted   lipgloss.Style
	code    lipgloss.Style
	tokens  map[smartchat.CodeTokenKind]lipgloss.Style
	heading map[int]lipgloss.Style
}

func newRenderer(theme smartchat.Theme) *ansiRenderer {
	accent := lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true)
	return &ansiRenderer{
		bold:   lipgloss.NewStyle().Bold(true),
		accent: accent,
		muted:  lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		code:   lipgloss.NewStyle().Foreground(ansiColor(theme.String)),
		tokens: map[smartchat.CodeTokenKind]lipgloss.Style{
			smartchat.TokenPlain:   lipgloss.NewStyle(),
			smartchat.TokenComment: lipgloss.NewStyle().Foreground(ansiColor(theme.Comment)).Italic(true),
			smartchat.TokenString:  lipgloss.NewStyle().Foreground(ansiColor(theme.String)),
			smartchat.TokenNumber:  lipgloss.NewStyle().Foreground(ansiColor(theme.Number)),
			smartchat.TokenKeyword: lipgloss.NewStyle().Foreground(ansiColor(theme.Keyword)).Bold(true),
		},
		heading: map[int]lipgloss.Style{
			2: accent.Underline(true),
			3: accent,
			4: lipgloss.NewStyle().Bold(true),
		},
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *ansiRenderer) render(blocks []smartchat.Block, width int) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, r.renderBlock(b, width))
	}
	return strings.Join(parts, "\n\n")
}

func (r *ansiRenderer) renderBlock(b smartchat.Block, width int) string {
	switch b := b.(type) {
	case smartchat.Heading:
		return wordwrap.String(r.heading[b.Level].Render(r.inline(b.Text)), width)

	case smartchat.Paragraph:
		return wordwrap.String(r.inline(b.Text), width)

	case smartchat.List:
		lines := make([]string, 0, len(b.Items))
		for i, item := range b.Items {
			marker := "- "
			if b.Ordered {
				marker = fmt.Sprintf("%d. ", i+1)
			}
			lines = append(lines, r.hanging(marker, r.inline(item), width))
		}
		return strings.Join(lines, "\n")

	case smartchat.Quote:
		gutter := r.muted.Render("│") + " "
		wrapped := wordwrap.String(r.inline(b.Text), wrapWidth(width, 2))
		return prefixLines(wrapped, gutter)

	case smartchat.CodeBlock:
		label := b.Language
		if label == "text" {
			label = "txt"
		}
		var sb strings.Builder
		sb.WriteString(r.muted.Render(label))
		gutter := r.muted.Render("│") + " "
		for _, line := range b.Lines {
			sb.WriteString("\n")
			sb.WriteString(gutter)
			for _, tok := range highlight.Tokenize(line, b.Language) {
				sb.WriteString(r.tokens[tok.Kind].Render(tok.Text))
			}
		}
		return sb.String()
	}
	return ""
}

// hanging wraps content after marker and indents continuation lines to the
// marker width.
func (r *ansiRenderer) hanging(marker, content string, width int) string {
	wrapped := wordwrap.String(content, wrapWidth(width, len(marker)))
	first, rest, found := strings.Cut(wrapped, "\n")
	if !found {
		return marker + first
	}
	return marker + first + "\n" + indent.String(rest, uint(len(marker)))
}

func (r *ansiRenderer) inline(text string) string {
	var sb strings.Builder
	for _, tok := range ParseInline(text) {
		switch tok := tok.(type) {
		case smartchat.PlainText:
			sb.WriteString(tok.Text)
		case smartchat.Bold:
			sb.WriteString(r.bold.Render(tok.Text))
		case smartchat.InlineCode:
			sb.WriteString(r.code.Render(tok.Text))
		}
	}
	return sb.String()
}

// wrapWidth returns the wrap limit left after reserving columns, at least
// 10; zero width disables wrapping.
func wrapWidth(width, reserve int) int {
	if width <= 0 {
		return 0
	}
	return max(width-reserve, 10)
}

func prefixLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
