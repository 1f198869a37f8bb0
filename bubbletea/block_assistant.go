package bubbletea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kodewerk/smartchat"
	"github.com/kodewerk/smartchat/markdown"
)

var _ MessageBlock = (*AssistantTextBlock)(nil)

// AssistantTextBlock renders a revealed reply with markdown formatting.
// Finalized paragraphs (separated by double newline) are rendered once and
// cached; only the trailing unfinalized text is re-rendered on each reveal.
type AssistantTextBlock struct {
	label   string
	content string
	theme   smartchat.Theme
	styles  Styles

	// finalizedRaw is the stable prefix ending at the last double newline.
	// It's rendered once per width and cached in finalizedByWidth.
	finalizedRaw     string
	finalizedByWidth map[int]string
}

// NewAssistantTextBlock creates a new block for a reply shown under label.
func NewAssistantTextBlock(label string, theme smartchat.Theme, styles Styles) *AssistantTextBlock {
	return &AssistantTextBlock{
		label:            label,
		theme:            theme,
		styles:           styles,
		finalizedByWidth: make(map[int]string),
	}
}

// Set replaces the revealed text. Reveals only ever extend the previous
// prefix, so the finalized cache survives unless text diverges from it.
func (b *AssistantTextBlock) Set(text string) {
	if !strings.HasPrefix(text, b.finalizedRaw) {
		b.finalizedRaw = ""
		clear(b.finalizedByWidth)
	}
	b.content = text
	b.promoteFinalized()
}

// Text returns the revealed text.
func (b *AssistantTextBlock) Text() string { return b.content }

func (b *AssistantTextBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *AssistantTextBlock) View(width int) string {
	body := b.body(width)
	if b.label == "" {
		return body
	}
	header := b.styles.Accent.Render(b.label)
	if body == "" {
		return header
	}
	return header + "\n" + body
}

func (b *AssistantTextBlock) body(width int) string {
	finalizedRendered := b.renderFinalized(width)
	trailing := b.trailingRaw()
	if hasUnclosedFence(trailing) {
		// Close fence only for rendering so partial streams display as code.
		trailing += "\n```"
	}
	if trailing == "" {
		return finalizedRendered
	}
	trailingRendered := markdown.Render(trailing, width, b.theme)
	if strings.TrimSpace(trailingRendered) == "" {
		return finalizedRendered
	}
	switch finalizedRendered {
	case "":
		return trailingRendered
	default:
		// Fragments are rendered independently; rejoin them with a single
		// paragraph break to match full-document output.
		return strings.TrimRight(finalizedRendered, "\n") + "\n\n" + strings.TrimLeft(trailingRendered, "\n")
	}
}

// promoteFinalized scans for the last "\n\n" boundary that doesn't fall inside
// an unclosed fenced code block. Splitting inside a fence would produce a
// finalized fragment with an unclosed opening fence and a trailing fragment
// starting mid-code-block.
func (b *AssistantTextBlock) promoteFinalized() {
	raw := b.content
	for end := len(raw); ; {
		idx := strings.LastIndex(raw[:end], "\n\n")
		if idx <= 0 {
			return
		}
		candidate := raw[:idx]
		if !hasUnclosedFence(candidate) {
			if candidate != b.finalizedRaw {
				b.finalizedRaw = candidate
				// Width-sensitive cache must be invalidated when finalized text grows.
				clear(b.finalizedByWidth)
			}
			return
		}
		end = idx
	}
}

// renderFinalized renders the finalized prefix, cached per positive width.
// A non-positive width renders unwrapped and is not cached.
func (b *AssistantTextBlock) renderFinalized(width int) string {
	if b.finalizedRaw == "" {
		return ""
	}
	if width <= 0 {
		return markdown.Render(b.finalizedRaw, width, b.theme)
	}
	if cached, ok := b.finalizedByWidth[width]; ok {
		return cached
	}
	rendered := markdown.Render(b.finalizedRaw, width, b.theme)
	b.finalizedByWidth[width] = rendered
	return rendered
}

func (b *AssistantTextBlock) trailingRaw() string {
	if b.finalizedRaw == "" {
		return b.content
	}
	return strings.TrimPrefix(b.content, b.finalizedRaw+"\n\n")
}

// hasUnclosedFence reports whether s contains an odd number of "```".
// Triple backticks inside inline code spans are counted too.
func hasUnclosedFence(s string) bool {
	return strings.Count(s, "```")%2 == 1
}
