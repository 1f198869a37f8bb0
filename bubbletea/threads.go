package bubbletea

import (
	"strings"
	"time"

	"github.com/kodewerk/smartchat"
	"github.com/kodewerk/smartchat/chat"
	"github.com/mattn/go-runewidth"
)

// threadList holds what the history sidebar shows.
type threadList struct {
	threads []smartchat.Thread
	active  string
	now     time.Time
	locale  smartchat.Locale
	text    chat.Strings
	width   int
	height  int
	styles  Styles
}

// renderThreadList draws the history title followed by two lines per
// thread: the title, marked when active, and the relative update time with
// a preview of the last message. Threads that do not fit in height are
// left out.
func renderThreadList(l threadList) string {
	var b strings.Builder
	b.WriteString(l.styles.Title.Render(truncate(l.text.HistoryTitle, l.width)))
	room := (l.height - 1) / 2
	for i, t := range l.threads {
		if i >= room {
			break
		}
		b.WriteString("\n")
		title := truncate(t.Title, l.width-2)
		if t.ID == l.active {
			b.WriteString(l.styles.Selected.Render("▸ " + title))
		} else {
			b.WriteString("  " + title)
		}
		detail := chat.RelativeLabel(t.UpdatedAt, l.now, l.locale) + " · " + chat.Preview(t, l.text)
		b.WriteString("\n  ")
		b.WriteString(l.styles.Muted.Render(truncate(detail, l.width-2)))
	}
	return b.String()
}

// truncate shortens s to at most width terminal cells, ending in an
// ellipsis when cut. A non-positive width leaves s unchanged.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
