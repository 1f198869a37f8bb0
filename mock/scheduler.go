package mock

import (
	"sync"
	"time"
)

// Scheduler is a fake clock. Scheduled callbacks run only when the clock is
// moved with Advance or RunUntilIdle, in due-time order and, for equal due
// times, in scheduling order. Callbacks run without the lock held and may
// schedule further callbacks.
type Scheduler struct {
	mu      sync.Mutex
	now     time.Time
	seq     int
	pending []*timer
}

type timer struct {
	at        time.Time
	seq       int
	fn        func()
	cancelled bool
}

// NewScheduler creates a fake clock starting at start.
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the fake time.
func (s *Scheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Schedule queues fn to run once the clock reaches now+delay.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &timer{at: s.now.Add(delay), seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		t.cancelled = true
	}
}

// Pending returns the number of queued, uncancelled callbacks.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.pending {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, running every callback that falls
// due on the way.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()
	for {
		s.mu.Lock()
		t := s.popLocked(func(t *timer) bool { return !t.at.After(target) })
		if t == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = t.at
		s.mu.Unlock()
		t.fn()
	}
}

// RunUntilIdle runs callbacks, moving the clock to each due time, until no
// callback is pending. It returns the number of callbacks run.
func (s *Scheduler) RunUntilIdle() int {
	n := 0
	for {
		s.mu.Lock()
		t := s.popLocked(func(*timer) bool { return true })
		if t == nil {
			s.mu.Unlock()
			return n
		}
		if t.at.After(s.now) {
			s.now = t.at
		}
		s.mu.Unlock()
		t.fn()
		n++
	}
}

// popLocked removes and returns the earliest uncancelled timer accepted by
// due, dropping cancelled timers.
func (s *Scheduler) popLocked(due func(*timer) bool) *timer {
	live := s.pending[:0]
	for _, t := range s.pending {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	s.pending = live

	idx := -1
	for i, t := range s.pending {
		if !due(t) {
			continue
		}
		if idx < 0 || t.at.Before(s.pending[idx].at) || (t.at.Equal(s.pending[idx].at) && t.seq < s.pending[idx].seq) {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}
	t := s.pending[idx]
	s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
	return t
}
