package letter

import (
	"strings"
	"sync"
	"time"

	"github.com/kodewerk/smartchat"
)

// CopyState is the transient result of the last copy.
type CopyState int

const (
	CopyIdle CopyState = iota
	CopyCopied
	CopyError
)

// CopyResetDelay is how long a copy result is shown before returning to idle.
const CopyResetDelay = 1600 * time.Millisecond

// Copier copies letters to a clipboard and tracks the result. Failures are
// reported through the state, never returned.
type Copier struct {
	clip  smartchat.Clipboard
	sched smartchat.Scheduler

	mu     sync.Mutex
	state  CopyState
	gen    int
	cancel func()
}

// NewCopier returns a Copier writing to clip and resetting its state via sched.
func NewCopier(clip smartchat.Clipboard, sched smartchat.Scheduler) *Copier {
	return &Copier{clip: clip, sched: sched}
}

// Copy writes text to the clipboard and returns the new state. Blank text
// is ignored.
func (c *Copier) Copy(text string) CopyState {
	if strings.TrimSpace(text) == "" {
		return c.State()
	}
	state := CopyCopied
	if err := c.clip.WriteAll(text); err != nil {
		state = CopyError
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.state = state
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	cancel := c.sched.Schedule(CopyResetDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.gen == gen {
			c.state = CopyIdle
		}
	})

	c.mu.Lock()
	if c.gen == gen {
		c.cancel = cancel
	}
	c.mu.Unlock()
	return state
}

// State returns the current state.
func (c *Copier) State() CopyState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Label returns the copy button text for locale.
func (s CopyState) Label(locale smartchat.Locale) string {
	t := Text(locale)
	switch s {
	case CopyCopied:
		return t.Copied
	case CopyError:
		return t.CopyError
	default:
		return t.Copy
	}
}
