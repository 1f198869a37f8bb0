// Package bubbletea provides a Bubble Tea TUI for the chat.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kodewerk/smartchat"
	"github.com/kodewerk/smartchat/stream"
)

// ReplyFunc reveals a reply. The onEvent callback is called for each
// emission of the reveal. The function blocks until the reply is fully
// revealed or the context is cancelled.
type ReplyFunc func(ctx context.Context, text string, onEvent func(smartchat.Event)) error

// RevealReply returns a ReplyFunc that reveals replies on wall-clock timers
// with the given pacing.
func RevealReply(pacing stream.Pacing) ReplyFunc {
	return func(ctx context.Context, text string, onEvent func(smartchat.Event)) error {
		return stream.Reveal(ctx, stream.TimerScheduler{}, text, onEvent, stream.WithPacing(pacing))
	}
}

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// StreamEventMsg wraps a reveal event for delivery to the Bubble Tea model.
// Seq identifies the reply the event belongs to.
type StreamEventMsg struct {
	Seq   int
	Event smartchat.Event
}

// ReplyDoneMsg signals that a reply has stopped revealing.
type ReplyDoneMsg struct {
	Seq int
	Err error
}
