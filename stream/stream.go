// Package stream reveals a fully known text in growing prefixes, imitating
// the latency of token-by-token generation.
//
// A Revealer is driven by a smartchat.Scheduler. Each tick advances the
// cursor by a random step and emits the revealed prefix to the observer;
// the last tick also emits smartchat.EventDone. At most one stream is active
// per Revealer: Start supersedes the previous stream and Cancel stops it.
// Ticks that fire after their stream was superseded or cancelled are no-ops.
//
// The observer runs with the Revealer's emission lock held, so once Start or
// Cancel returns no event of the previous stream is delivered. The observer
// must therefore not call Start or Cancel itself; it hands such requests to
// its own event loop or scheduler instead.
package stream

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/kodewerk/smartchat"
	"github.com/rivo/uniseg"
)

// Option configures a Revealer.
type Option func(*Revealer)

// WithPacing sets the step and delay ranges. The default is ChatPacing.
func WithPacing(p Pacing) Option {
	return func(r *Revealer) {
		r.pacing = p
	}
}

// WithRand sets the random source for steps and delays.
func WithRand(rnd smartchat.Rand) Option {
	return func(r *Revealer) {
		r.rand = rnd
	}
}

// WithClock sets the clock used for EventDone.CompletedAt.
func WithClock(now func() time.Time) Option {
	return func(r *Revealer) {
		r.now = now
	}
}

// Revealer runs one reveal stream at a time.
type Revealer struct {
	sched    smartchat.Scheduler
	observer func(smartchat.Event)
	pacing   Pacing
	rand     smartchat.Rand
	now      func() time.Time

	emitMu sync.Mutex // held across a tick, taken before mu

	mu     sync.Mutex
	gen    uint64 // bumped on every Start and Cancel
	text   string
	bounds []int // byte offset after each grapheme cluster of text
	cursor int
	active bool
	stop   func() // cancels the pending tick
}

// New creates a Revealer that schedules ticks on sched and emits to observer.
// A nil observer discards events.
func New(sched smartchat.Scheduler, observer func(smartchat.Event), opts ...Option) (*Revealer, error) {
	if sched == nil {
		return nil, fmt.Errorf("scheduler is nil: %w", smartchat.ErrValidation)
	}
	r := &Revealer{
		sched:    sched,
		observer: observer,
		pacing:   ChatPacing(),
		rand:     globalRand{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.pacing.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Handle refers to one started stream.
type Handle struct {
	r   *Revealer
	gen uint64
}

// Cancel stops the stream if it is still the Revealer's current stream.
func (h Handle) Cancel() {
	if h.r == nil {
		return
	}
	h.r.emitMu.Lock()
	defer h.r.emitMu.Unlock()
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	if h.gen == h.r.gen {
		h.r.stopLocked()
	}
}

// Active reports whether the stream is current and still revealing.
func (h Handle) Active() bool {
	if h.r == nil {
		return false
	}
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	return h.gen == h.r.gen && h.r.active
}

// Start cancels any active stream and begins revealing text from an empty
// prefix. The first tick is scheduled with zero delay.
func (r *Revealer) Start(text string) (Handle, error) {
	if text == "" {
		return Handle{}, fmt.Errorf("start reveal: %w", smartchat.ErrEmptyText)
	}
	bounds := graphemeBounds(text)

	r.emitMu.Lock()
	defer r.emitMu.Unlock()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
	gen := r.gen
	r.text = text
	r.bounds = bounds
	r.cursor = 0
	r.active = true
	r.stop = r.sched.Schedule(0, func() { r.tick(gen) })
	return Handle{r: r, gen: gen}, nil
}

// Cancel stops the active stream. It is idempotent and safe in any state.
// It waits for an emission in progress to return.
func (r *Revealer) Cancel() {
	r.emitMu.Lock()
	defer r.emitMu.Unlock()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

// State returns a snapshot of the current stream.
func (r *Revealer) State() smartchat.RevealState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return smartchat.RevealState{FullText: r.text, Cursor: r.cursor, Active: r.active}
}

func (r *Revealer) stopLocked() {
	if r.stop != nil {
		r.stop()
		r.stop = nil
	}
	r.gen++
	r.active = false
}

// tick advances the stream of generation gen by one step. The next tick is
// only scheduled after the emission, so emissions stay in order even when
// the observer is slower than the delay. Start and Cancel block on emitMu
// until the tick returns, so gen cannot change during the emission.
func (r *Revealer) tick(gen uint64) {
	r.emitMu.Lock()
	defer r.emitMu.Unlock()

	r.mu.Lock()
	if gen != r.gen || !r.active {
		r.mu.Unlock()
		return
	}
	r.stop = nil
	r.cursor = min(len(r.bounds), r.cursor+r.pacing.step(r.rand))
	prefix := r.text[:r.bounds[r.cursor-1]]
	done := r.cursor == len(r.bounds)
	var completedAt time.Time
	if done {
		r.active = false
		completedAt = r.now()
	}
	r.mu.Unlock()

	r.emit(smartchat.EventReveal{Prefix: prefix})
	if done {
		r.emit(smartchat.EventDone{Text: prefix, CompletedAt: completedAt})
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.stop = r.sched.Schedule(r.pacing.delay(r.rand), func() { r.tick(gen) })
}

func (r *Revealer) emit(e smartchat.Event) {
	if r.observer != nil {
		r.observer(e)
	}
}

// Reveal runs a single stream of text to completion, blocking until the
// final EventDone was delivered or ctx is cancelled. No event is delivered
// after Reveal returns.
func Reveal(ctx context.Context, sched smartchat.Scheduler, text string, observer func(smartchat.Event), opts ...Option) error {
	done := make(chan struct{})
	r, err := New(sched, func(e smartchat.Event) {
		if observer != nil {
			observer(e)
		}
		if _, ok := e.(smartchat.EventDone); ok {
			close(done)
		}
	}, opts...)
	if err != nil {
		return err
	}
	if _, err := r.Start(text); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}

// graphemeBounds returns the byte offset after each grapheme cluster of s.
func graphemeBounds(s string) []int {
	bounds := make([]int, 0, len(s))
	state := -1
	offset := 0
	for rest := s; len(rest) > 0; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offset += len(cluster)
		bounds = append(bounds, offset)
	}
	return bounds
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
