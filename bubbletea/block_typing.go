package bubbletea

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

var _ MessageBlock = (*TypingBlock)(nil)

// TypingBlock stands in for a reply that is streaming but has no revealed
// text yet. It forwards spinner ticks to its spinner.
type TypingBlock struct {
	label   string
	text    string
	spinner spinner.Model
	styles  Styles
}

// NewTypingBlock creates a TypingBlock showing text next to the spinner.
func NewTypingBlock(label, text string, s spinner.Model, styles Styles) *TypingBlock {
	return &TypingBlock{label: label, text: text, spinner: s, styles: styles}
}

func (b *TypingBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	var cmd tea.Cmd
	b.spinner, cmd = b.spinner.Update(msg)
	return b, cmd
}

func (b *TypingBlock) View(width int) string {
	return b.styles.Accent.Render(b.label) + "\n" + b.spinner.View() + " " + b.styles.Muted.Render(b.text)
}
