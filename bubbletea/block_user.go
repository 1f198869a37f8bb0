package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ MessageBlock = (*UserMessageBlock)(nil)

// UserMessageBlock renders a user prompt under the user label.
type UserMessageBlock struct {
	label  string
	text   string
	styles Styles
}

// NewUserMessageBlock creates a UserMessageBlock.
func NewUserMessageBlock(label, text string, styles Styles) *UserMessageBlock {
	return &UserMessageBlock{label: label, text: text, styles: styles}
}

func (b *UserMessageBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *UserMessageBlock) View(width int) string {
	header := b.styles.UserMsg.Render(b.label)
	return header + "\n" + lipgloss.NewStyle().Width(width).Render(b.text)
}
