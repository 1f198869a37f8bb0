package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ MessageBlock = (*ErrorBlock)(nil)

// ErrorBlock shows a failed reply under the localized error label.
type ErrorBlock struct {
	label  string
	err    error
	styles Styles
}

// NewErrorBlock creates an ErrorBlock.
func NewErrorBlock(label string, err error, styles Styles) *ErrorBlock {
	return &ErrorBlock{label: label, err: err, styles: styles}
}

func (b *ErrorBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *ErrorBlock) View(width int) string {
	header := b.styles.Error.Render(b.label)
	body := b.styles.Error.Render(b.err.Error())
	if width > 0 {
		body = lipgloss.NewStyle().Width(width).Render(body)
	}
	return header + "\n" + body
}
