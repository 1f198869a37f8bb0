package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/kodewerk/smartchat"
)

// RelativeLabel describes how long ago ts was relative to now: "just now"
// under a minute, whole minutes under an hour, and the clock time after
// that. Timestamps in the future count as now.
func RelativeLabel(ts, now time.Time, locale smartchat.Locale) string {
	de := smartchat.ParseLocale(string(locale)) == smartchat.LocaleDE
	minutes := int(max(now.Sub(ts), 0) / time.Minute)
	switch {
	case minutes < 1 && de:
		return "gerade eben"
	case minutes < 1:
		return "just now"
	case minutes < 60 && de:
		return fmt.Sprintf("vor %d Min", minutes)
	case minutes < 60:
		return fmt.Sprintf("%d min ago", minutes)
	case de:
		return ts.Format("15:04")
	default:
		return ts.Format("03:04 PM")
	}
}

// Preview returns the text shown for a thread in the history list: the
// trimmed content of its last message, the typing hint while that message
// streams empty, or "...".
func Preview(thread smartchat.Thread, text Strings) string {
	last := thread.Last()
	switch {
	case last == nil:
		return "..."
	case strings.TrimSpace(last.Content) != "":
		return strings.Join(strings.Fields(last.Content), " ")
	case last.Streaming:
		return text.Typing
	default:
		return "..."
	}
}
