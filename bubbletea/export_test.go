package bubbletea

import (
	"context"
	"time"

	"github.com/kodewerk/smartchat"
	"github.com/kodewerk/smartchat/chat"
)

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}

// Seq returns the sequence number of the latest reply.
func Seq(m Model) int {
	return m.seq
}

// SetCancel is a test helper that replaces the cancel function of the
// streaming reply.
func SetCancel(m Model, cancel context.CancelFunc) Model {
	m.cancel = cancel
	return m
}

// RenderThreadList exports renderThreadList for testing.
func RenderThreadList(threads []smartchat.Thread, active string, now time.Time, locale smartchat.Locale, width, height int) string {
	return renderThreadList(threadList{
		threads: threads,
		active:  active,
		now:     now,
		locale:  locale,
		text:    chat.Copy(locale),
		width:   width,
		height:  height,
		styles:  NewStyles(smartchat.DefaultTheme()),
	})
}

// Truncate exports truncate for testing.
func Truncate(s string, width int) string {
	return truncate(s, width)
}

// StartReply exports startReply for testing.
func StartReply(run ReplyFunc, ctx context.Context, text string, eventCh chan<- smartchat.Event, doneCh chan<- error) func() {
	cmd := startReply(run, ctx, text, eventCh, doneCh)
	return func() { cmd() }
}

// ListenForEvent exports listenForEvent for testing.
func ListenForEvent(seq int, ch <-chan smartchat.Event, doneCh chan error) any {
	return listenForEvent(seq, ch, doneCh)()
}
