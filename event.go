package smartchat

import "time"

// Event is a sealed interface representing an emission of a reveal stream.
// The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// EventReveal carries the currently revealed prefix of the full text.
// Prefixes within one stream are strictly length-increasing.
type EventReveal struct {
	Prefix string
}

func (EventReveal) event() {}

// EventDone signals that the full text has been revealed.
type EventDone struct {
	Text        string
	CompletedAt time.Time
}

func (EventDone) event() {}

// Interface compliance checks.
var (
	_ Event = EventReveal{}
	_ Event = EventDone{}
)
