package stream

import (
	"time"

	"github.com/kodewerk/smartchat"
)

var _ smartchat.Scheduler = TimerScheduler{}

// TimerScheduler schedules callbacks on wall-clock timers. Callbacks run on
// their own goroutines.
type TimerScheduler struct{}

// Schedule runs fn after delay using time.AfterFunc.
func (TimerScheduler) Schedule(delay time.Duration, fn func()) func() {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}
